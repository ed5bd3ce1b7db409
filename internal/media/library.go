// Package media builds the list of choices offered by the image picker.
package media

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/richedit/internal/core/config"
	"github.com/hay-kot/richedit/internal/core/validate"
)

// Item is a single pickable media entry.
type Item struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Library is an ordered, de-duplicated set of media items.
type Library struct {
	items    []Item
	rejected []Item
	seen     map[string]struct{}
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{seen: make(map[string]struct{})}
}

// Add appends items, skipping URLs already present. Items whose URL would not
// survive verbatim insertion into markup are kept aside in Rejected.
func (l *Library) Add(items ...Item) {
	for _, it := range items {
		if it.URL == "" {
			continue
		}
		if err := validate.URL(it.URL); err != nil {
			l.rejected = append(l.rejected, it)
			continue
		}
		if _, ok := l.seen[it.URL]; ok {
			continue
		}
		if it.Label == "" {
			it.Label = path.Base(it.URL)
		}
		l.seen[it.URL] = struct{}{}
		l.items = append(l.items, it)
	}
}

// Items returns the library contents in insertion order.
func (l *Library) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Rejected returns the items skipped for having an unusable URL.
func (l *Library) Rejected() []Item {
	out := make([]Item, len(l.rejected))
	copy(out, l.rejected)
	return out
}

// Len returns the number of items.
func (l *Library) Len() int { return len(l.items) }

// Load assembles a library from configuration: fixed items first, then
// manifest files in declaration order, then files discovered under the media
// directories.
func Load(cfg config.MediaConfig, resolve func(string) string) (*Library, error) {
	if resolve == nil {
		resolve = func(p string) string { return p }
	}

	lib := NewLibrary()
	for _, it := range cfg.Items {
		lib.Add(Item{Label: it.Label, URL: it.URL})
	}

	for _, file := range cfg.Manifests {
		items, err := loadManifest(resolve(file))
		if err != nil {
			return nil, err
		}
		lib.Add(items...)
	}

	for _, dir := range cfg.Dirs {
		items, err := Scan(os.DirFS(resolve(dir)), cfg.Patterns, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("scan media dir %q: %w", dir, err)
		}
		lib.Add(items...)
	}

	return lib, nil
}

// Scan walks fsys for files matching any of patterns and returns one item per
// file whose content sniffs as an image. The URL is baseURL joined with the
// slash-separated relative path.
func Scan(fsys fs.FS, patterns []string, baseURL string) ([]Item, error) {
	matched := make(map[string]struct{})

	for _, pattern := range patterns {
		paths, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, p := range paths {
			matched[p] = struct{}{}
		}
	}

	paths := make([]string, 0, len(matched))
	for p := range matched {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	items := make([]Item, 0, len(paths))
	for _, p := range paths {
		ok, err := isImage(fsys, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		items = append(items, Item{
			Label: p,
			URL:   joinURL(baseURL, p),
		})
	}
	return items, nil
}

// isImage sniffs the file header; extensions alone are not trusted.
func isImage(fsys fs.FS, name string) (bool, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return false, fmt.Errorf("open %q: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return false, fmt.Errorf("detect type of %q: %w", name, err)
	}
	return strings.HasPrefix(mt.String(), "image/"), nil
}

// joinURL escapes each segment of the slash-separated path rel.
func joinURL(base, rel string) string {
	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	rel = strings.Join(segments, "/")

	if base == "" {
		return rel
	}
	return strings.TrimRight(base, "/") + "/" + rel
}

// loadManifest reads a YAML list of media items.
func loadManifest(file string) ([]Item, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read media manifest %q: %w", file, err)
	}

	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse media manifest %q: %w", file, err)
	}
	return items, nil
}
