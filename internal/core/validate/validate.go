// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hay-kot/criterio"
)

var (
	ErrURLRequired = errors.New("url is required")
	ErrURLChars    = errors.New("url must not contain spaces or quotes")
)

// URL validates a link or image URL. Markup values are inserted verbatim into
// quoted attributes, so whitespace, quotes and angle brackets are rejected.
// Relative URLs are accepted.
func URL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrURLRequired
	}
	if strings.ContainsAny(s, " \t\n\"<>") {
		return ErrURLChars
	}
	if _, err := url.Parse(s); err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	return nil
}

// URLField returns a criterio validator for URLs.
func URLField(field, s string) error {
	return criterio.Run(field, s, URL)
}

// KeyName validates a keybinding key as reported by the terminal, such as
// "ctrl+k" or "alt+b".
func KeyName(k string) error {
	if strings.TrimSpace(k) == "" {
		return fmt.Errorf("key is required")
	}
	if strings.ContainsAny(k, " \t\n") {
		return fmt.Errorf("key %q must not contain whitespace", k)
	}
	if k != "+" && (strings.HasPrefix(k, "+") || strings.HasSuffix(k, "+")) {
		return fmt.Errorf("key %q has an empty modifier", k)
	}
	return nil
}

// KeyNameField returns a criterio validator for keybinding keys.
func KeyNameField(field, k string) error {
	return criterio.Run(field, k, KeyName)
}
