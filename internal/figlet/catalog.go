// File: internal/figlet/catalog.go
// Brief: Internal figlet package implementation for 'font catalog'.

// Package figlet wraps the go-figure FIGlet engine: it knows which fonts
// exist (bundled ones plus .flf files from font directories), resolves a
// user's font choice and renders text at a maximum width.
package figlet

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/mitchellh/go-homedir"
)

// DefaultFont is used when no font is configured.
const DefaultFont = "standard"

const fontExt = ".flf"

var (
	ErrUnknownFont  = errors.New("unknown font")
	ErrInvalidIndex = errors.New("font index out of range")
)

// Catalog is the ordered list of fonts available for rendering.
type Catalog struct {
	fonts []string
	paths map[string]string
}

// NewCatalog lists the bundled fonts followed by the fonts found in dirs.
// Missing or unreadable directories are skipped.
func NewCatalog(dirs []string, log logr.Logger) *Catalog {
	c := &Catalog{
		fonts: slices.Clone(builtinFonts),
		paths: map[string]string{},
	}
	known := make(map[string]struct{}, len(builtinFonts))
	for _, name := range builtinFonts {
		known[name] = struct{}{}
	}

	var extra []string
	for _, dir := range dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if expanded, err := homedir.Expand(dir); err == nil {
			dir = expanded
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.V(1).Info("skipping font directory", "dir", dir, "error", err.Error())
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), fontExt) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			if _, dup := known[name]; dup {
				continue
			}
			known[name] = struct{}{}
			c.paths[name] = filepath.Join(dir, entry.Name())
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	c.fonts = append(c.fonts, extra...)
	log.V(1).Info("font catalog loaded", "builtin", len(builtinFonts), "custom", len(extra))
	return c
}

// Fonts returns the font names in listing order.
func (c *Catalog) Fonts() []string {
	return slices.Clone(c.fonts)
}

func (c *Catalog) Len() int {
	return len(c.fonts)
}

// Has reports whether name is an exact font name.
func (c *Catalog) Has(name string) bool {
	return slices.Contains(c.fonts, name)
}

// Path returns the file backing a directory font.
func (c *Catalog) Path(name string) (string, bool) {
	p, ok := c.paths[name]
	return p, ok
}

// Resolve turns a font name or 1-based index into a font name.
func (c *Catalog) Resolve(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if n, err := strconv.Atoi(spec); err == nil {
		if n < 1 || n > len(c.fonts) {
			return "", fmt.Errorf("%w: %d (1-%d)", ErrInvalidIndex, n, len(c.fonts))
		}
		return c.fonts[n-1], nil
	}
	if c.Has(spec) {
		return spec, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFont, spec)
}

// Random picks a font using r, or the global source when r is nil.
func (c *Catalog) Random(r *rand.Rand) string {
	if len(c.fonts) == 0 {
		return DefaultFont
	}
	if r == nil {
		return c.fonts[rand.IntN(len(c.fonts))]
	}
	return c.fonts[r.IntN(len(c.fonts))]
}

// UserMessage maps resolution errors to the messages shown to users.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidIndex):
		return "Invalid number! Please enter valid font number."
	case errors.Is(err, ErrUnknownFont):
		return "Invalid font name! Please enter valid font name."
	default:
		return err.Error()
	}
}
