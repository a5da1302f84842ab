// Package i18n resolves namespaced display keys ("namespace|Text") against
// TOML catalogs.
//
// A catalog maps each namespace to a table of text → translation:
//
//	[translation]
//	"Mark all as read" = "Alle als gelesen markieren"
//
// Built-in catalogs ship with the binary; a file named {locale}.toml in the
// locale directory overrides individual entries.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/inbox/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

//go:embed locales/*.toml
var builtin embed.FS

// KeySeparator splits a key into namespace and text.
const KeySeparator = "|"

// Catalog is a loaded set of translations for one locale.
type Catalog struct {
	locale  string
	entries map[string]string
}

// Load builds the catalog for locale from the built-in catalogs and, when
// dir is non-empty, {dir}/{locale}.toml. A regional locale such as "de-AT"
// falls back to "de". Missing files are not an error.
func Load(dir, locale string) (*Catalog, error) {
	c := &Catalog{locale: locale, entries: make(map[string]string)}
	for _, candidate := range candidates(locale) {
		if err := c.mergeBuiltin(candidate); err != nil {
			return nil, err
		}
		if dir == "" {
			continue
		}
		if err := c.mergeFile(filepath.Join(dir, candidate+".toml")); err != nil {
			return nil, err
		}
	}
	logging.Debug("translations loaded", "locale", locale, "entries", len(c.entries))
	return c, nil
}

// candidates lists base locale first so regional entries win.
func candidates(locale string) []string {
	locale = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(locale, "_", "-")))
	if locale == "" {
		return nil
	}
	base, _, found := strings.Cut(locale, "-")
	if !found {
		return []string{locale}
	}
	return []string{base, locale}
}

func (c *Catalog) mergeBuiltin(locale string) error {
	data, err := builtin.ReadFile("locales/" + locale + ".toml")
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.merge(data, "builtin "+locale)
}

func (c *Catalog) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}
	return c.merge(data, path)
}

func (c *Catalog) merge(data []byte, source string) error {
	var raw map[string]map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse catalog %s: %w", source, err)
	}
	for namespace, table := range raw {
		for text, translated := range table {
			c.entries[namespace+KeySeparator+text] = translated
		}
	}
	return nil
}

// Locale returns the locale the catalog was loaded for.
func (c *Catalog) Locale() string {
	return c.locale
}

// Translate returns the translation for key. Unknown keys come back as their
// text part; Translate never fails.
func (c *Catalog) Translate(key string) string {
	if c != nil {
		if v, ok := c.entries[key]; ok && v != "" {
			return v
		}
	}
	return Fallback(key)
}

// Fallback returns the text after the namespace separator, or key itself
// when there is none.
func Fallback(key string) string {
	if _, text, ok := strings.Cut(key, KeySeparator); ok {
		return text
	}
	return key
}
