package figlet

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-logr/logr"
)

func TestResolveByNameAndIndex(t *testing.T) {
	c := NewCatalog(nil, logr.Discard())
	got, err := c.Resolve("standard")
	if err != nil || got != "standard" {
		t.Fatalf("resolve by name: %q, %v", got, err)
	}
	got, err = c.Resolve("1")
	if err != nil || got != c.Fonts()[0] {
		t.Fatalf("resolve by index: %q, %v", got, err)
	}
	last, err := c.Resolve(" " + strconv.Itoa(c.Len()) + " ")
	if err != nil || last != c.Fonts()[c.Len()-1] {
		t.Fatalf("resolve last index: %q, %v", last, err)
	}
}

func TestResolveRejectsBadInput(t *testing.T) {
	c := NewCatalog(nil, logr.Discard())
	for _, spec := range []string{"0", "-3", strconv.Itoa(c.Len() + 1)} {
		if _, err := c.Resolve(spec); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("resolve %q: expected ErrInvalidIndex, got %v", spec, err)
		}
	}
	_, err := c.Resolve("Standard")
	if !errors.Is(err, ErrUnknownFont) {
		t.Fatalf("font names are exact; expected ErrUnknownFont, got %v", err)
	}
	if got := UserMessage(err); got != "Invalid font name! Please enter valid font name." {
		t.Fatalf("unexpected user message %q", got)
	}
	if got := UserMessage(ErrInvalidIndex); got != "Invalid number! Please enter valid font number." {
		t.Fatalf("unexpected user message %q", got)
	}
}

func TestCatalogAddsDirectoryFonts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.flf", "alpha.FLF", "standard.flf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("flf2a$ 1 1 1 0 0\n"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	c := NewCatalog([]string{dir, filepath.Join(dir, "missing")}, logr.Discard())
	if c.Len() != len(builtinFonts)+2 {
		t.Fatalf("expected two custom fonts, got %d total", c.Len())
	}
	fonts := c.Fonts()
	if fonts[len(fonts)-2] != "alpha" || fonts[len(fonts)-1] != "zeta" {
		t.Fatalf("custom fonts should follow builtins in sorted order, got %v", fonts[len(fonts)-2:])
	}
	if _, ok := c.Path("standard"); ok {
		t.Fatalf("bundled font must win over directory duplicate")
	}
	if p, ok := c.Path("zeta"); !ok || filepath.Base(p) != "zeta.flf" {
		t.Fatalf("unexpected path for zeta: %q %v", p, ok)
	}
}

func TestRandomUsesCatalog(t *testing.T) {
	c := NewCatalog(nil, logr.Discard())
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		if font := c.Random(r); !c.Has(font) {
			t.Fatalf("random font %q not in catalog", font)
		}
	}
}

func TestRenderUnknownFont(t *testing.T) {
	r := NewRenderer(NewCatalog(nil, logr.Discard()), logr.Discard())
	if _, err := r.Render("hi", "nope", 80); !errors.Is(err, ErrUnknownFont) {
		t.Fatalf("expected ErrUnknownFont, got %v", err)
	}
}

func TestRenderStandard(t *testing.T) {
	r := NewRenderer(NewCatalog(nil, logr.Discard()), logr.Discard())
	art, err := r.Render("Hi", "standard", 0)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	rows := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if len(rows) < 3 {
		t.Fatalf("expected a multi-row banner, got %q", art)
	}
	if BlockWidth(rows) == 0 {
		t.Fatalf("expected visible glyphs, got %q", art)
	}
}

func TestRenderWrapsToWidth(t *testing.T) {
	r := NewRenderer(NewCatalog(nil, logr.Discard()), logr.Discard())
	text := "hi hi hi hi hi hi hi hi"
	wide, err := r.Render(text, "standard", 0)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	narrow, err := r.Render(text, "standard", 30)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	wideRows := strings.Split(strings.TrimRight(wide, "\n"), "\n")
	narrowRows := strings.Split(strings.TrimRight(narrow, "\n"), "\n")
	if len(narrowRows) <= len(wideRows) {
		t.Fatalf("expected wrapping to add rows: %d vs %d", len(narrowRows), len(wideRows))
	}
	if w := BlockWidth(narrowRows); w > 30 {
		t.Fatalf("wrapped banner is %d cells wide, limit 30", w)
	}
}

func TestRenderReportsUnreadableFontFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.flf")
	if err := os.WriteFile(path, []byte("flf2a$ 1 1 1 0 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := NewRenderer(NewCatalog([]string{dir}, logr.Discard()), logr.Discard())
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := r.Render("hi", "gone", 0); err == nil || !strings.Contains(err.Error(), "read font file") {
		t.Fatalf("expected read error, got %v", err)
	}
}
