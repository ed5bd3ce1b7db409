package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility of the config file, data directory and media sources. The
// configPath argument specifies the config file location to validate (empty
// string skips config file check). This calls Validate() first for basic
// structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateMediaDirs(),
		c.validateManifests(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if len(c.Media.Dirs) == 0 && len(c.Media.Items) == 0 && len(c.Media.Manifests) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Media",
			Message:  "no media sources configured; the image picker will be empty",
		})
	}

	if len(c.Media.Dirs) > 0 && c.Media.BaseURL == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Media",
			Item:     "base_url",
			Message:  "media dirs set without base_url; image src will be a bare relative path",
		})
	}

	for key, kb := range c.Keybindings {
		if kb.Help == "" {
			warnings = append(warnings, ValidationWarning{
				Category: "Keybindings",
				Item:     key,
				Message:  "keybinding has no help text",
			})
		}
	}

	return warnings
}

// validateFileAccess checks config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validateMediaDirs checks that every configured media directory exists.
func (c *Config) validateMediaDirs() error {
	var errs criterio.FieldErrorsBuilder

	for i, dir := range c.Media.Dirs {
		path := c.ResolvePath(dir)
		info, err := os.Stat(path)
		switch {
		case err != nil:
			errs = errs.Append(fmt.Sprintf("media.dirs[%d]", i), fmt.Errorf("directory not found: %s", dir))
		case !info.IsDir():
			errs = errs.Append(fmt.Sprintf("media.dirs[%d]", i), fmt.Errorf("%s is not a directory", dir))
		}
	}

	return errs.ToError()
}

func (c *Config) validateManifests() error {
	var errs criterio.FieldErrorsBuilder

	for i, file := range c.Media.Manifests {
		if _, err := os.Stat(c.ResolvePath(file)); err != nil {
			errs = errs.Append(fmt.Sprintf("media.manifests[%d]", i), fmt.Errorf("file not found: %s", file))
		}
	}

	return errs.ToError()
}
