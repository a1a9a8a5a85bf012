// File: internal/output/output.go
// Brief: Internal output package implementation for 'banner files'.

// Package output writes rendered banners to the flat text file format:
// one "### FONT: <name> ###" header per block, followed by the art and a
// blank separator line.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// DefaultPath is where banners are saved when no output path is configured.
const DefaultPath = "ascii_art.txt"

// Block is one labeled rendering.
type Block struct {
	Font string
	Art  string
}

// Header returns the header line introducing a block rendered with font.
func Header(font string) string {
	return fmt.Sprintf("### FONT: %s ###", font)
}

// Format concatenates blocks into the file format.
func Format(blocks []Block) string {
	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(Header(block.Font))
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(block.Art, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}

// Write overwrites path with blocks and returns the expanded path written.
func Write(path string, blocks []Block) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("output path is empty")
	}
	if len(blocks) == 0 {
		return "", errors.New("nothing to save")
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "expand %s", path)
	}
	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "create %s", dir)
		}
	}
	if err := os.WriteFile(expanded, []byte(Format(blocks)), 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", expanded)
	}
	return expanded, nil
}
