package figlet

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/go-logr/logr"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const fontCacheSize = 64

// Renderer draws text with the fonts of a Catalog.
type Renderer struct {
	catalog *Catalog
	fonts   *lru.Cache[string, []byte]
	log     logr.Logger
}

// NewRenderer returns a Renderer for c.
func NewRenderer(c *Catalog, log logr.Logger) *Renderer {
	cache, err := lru.New[string, []byte](fontCacheSize)
	if err != nil {
		// Only a non-positive size fails.
		panic(err)
	}
	return &Renderer{catalog: c, fonts: cache, log: log}
}

// Catalog returns the catalog the renderer draws from.
func (r *Renderer) Catalog() *Catalog {
	return r.catalog
}

// Render draws text with font. When width is positive, words are wrapped so
// that no rendered row is wider than width; a single word that is already
// too wide is drawn on its own. Explicit line breaks in text are kept.
func (r *Renderer) Render(text, font string, width int) (art string, err error) {
	if !r.catalog.Has(font) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFont, font)
	}
	defer func() {
		if rec := recover(); rec != nil {
			art = ""
			err = fmt.Errorf("render with font %q: %v", font, rec)
		}
	}()

	var rows []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		drawn, err := r.wrap(paragraph, font, width)
		if err != nil {
			return "", err
		}
		rows = append(rows, drawn...)
	}
	r.log.V(1).Info("rendered text", "font", font, "width", width, "rows", len(rows))
	return strings.Join(rows, "\n") + "\n", nil
}

func (r *Renderer) wrap(paragraph, font string, width int) ([]string, error) {
	words := strings.Fields(paragraph)
	if width <= 0 || len(words) <= 1 {
		return r.draw(paragraph, font)
	}

	var rows []string
	current := words[0]
	currentRows, err := r.draw(current, font)
	if err != nil {
		return nil, err
	}
	for _, word := range words[1:] {
		candidate := current + " " + word
		candidateRows, err := r.draw(candidate, font)
		if err != nil {
			return nil, err
		}
		if BlockWidth(candidateRows) <= width {
			current, currentRows = candidate, candidateRows
			continue
		}
		rows = append(rows, currentRows...)
		current = word
		if currentRows, err = r.draw(current, font); err != nil {
			return nil, err
		}
	}
	return append(rows, currentRows...), nil
}

func (r *Renderer) draw(phrase, font string) ([]string, error) {
	if path, ok := r.catalog.Path(font); ok {
		data, err := r.fontData(path)
		if err != nil {
			return nil, err
		}
		return figure.NewFigureWithFont(phrase, bytes.NewReader(data), false).Slicify(), nil
	}
	return figure.NewFigure(phrase, font, false).Slicify(), nil
}

func (r *Renderer) fontData(path string) ([]byte, error) {
	if data, ok := r.fonts.Get(path); ok {
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read font file %s", path)
	}
	r.fonts.Add(path, data)
	r.log.V(1).Info("loaded font file", "path", path, "bytes", len(data))
	return data, nil
}

// BlockWidth is the widest row of a rendering, ignoring trailing spaces.
func BlockWidth(rows []string) int {
	widest := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(strings.TrimRight(row, " ")); w > widest {
			widest = w
		}
	}
	return widest
}
