package shell

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/asciigen/internal/config"
	"github.com/example/asciigen/internal/figlet"
	"github.com/example/asciigen/internal/layout"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

type testShell struct {
	*Shell
	out *bytes.Buffer
	err *bytes.Buffer
}

func newTestShell(t *testing.T, input string) testShell {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "art.txt")
	var out, errOut bytes.Buffer
	renderer := figlet.NewRenderer(figlet.NewCatalog(nil, logr.Discard()), logr.Discard())
	sh, err := New(Options{
		In:         strings.NewReader(input),
		Out:        &out,
		Err:        &errOut,
		Config:     cfg,
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		Renderer:   renderer,
		Logger:     logr.Discard(),
		Size:       func() layout.Size { return layout.Size{Width: 100, Height: 30} },
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Sleep:      func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("new shell: %v", err)
	}
	return testShell{Shell: sh, out: &out, err: &errOut}
}

func run(t *testing.T, sh testShell) {
	t.Helper()
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestNewRequiresRenderer(t *testing.T) {
	if _, err := New(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error without renderer")
	}
}

func TestRunGreetsAndStopsAtExit(t *testing.T) {
	sh := newTestShell(t, "\n   \nbogus\nexit\nfont slant\n")
	run(t, sh)
	out := sh.out.String()
	if !strings.Contains(out, tagline) {
		t.Fatalf("expected banner, got %q", out)
	}
	if got := strings.Count(out, Prompt); got != 4 {
		t.Fatalf("expected 4 prompts, got %d", got)
	}
	if !strings.Contains(sh.err.String(), `unknown command "bogus"`) {
		t.Fatalf("expected unknown command failure, got %q", sh.err.String())
	}
	if sh.Session().Font != figlet.DefaultFont {
		t.Fatalf("lines after exit must not run, font is %q", sh.Session().Font)
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	sh := newTestShell(t, "width 40")
	run(t, sh)
	if sh.Session().Width != 40 {
		t.Fatalf("expected width 40, got %d", sh.Session().Width)
	}
}

func TestGreetingNamesExitKeys(t *testing.T) {
	sh := newTestShell(t, "")
	run(t, sh)
	out := sh.out.String()
	for _, want := range []string{"'exit'", "Ctrl-C", "Ctrl-D"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in greeting, got %q", want, out)
		}
	}
}

func TestRunStopsWhenInterruptedDuringRead(t *testing.T) {
	sh := newTestShell(t, "")
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	sh.in = pr

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- sh.Run(ctx) }()

	if _, err := pw.Write([]byte("width 50\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	cancel()
	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("shell kept waiting for input after cancellation")
	}
}

func TestExecuteIgnoresEmptyLines(t *testing.T) {
	sh := newTestShell(t, "")
	for _, line := range []string{"", "  ", "\t"} {
		if err := sh.Execute(line); err != nil {
			t.Fatalf("execute %q: %v", line, err)
		}
	}
	if sh.out.Len() != 0 || sh.err.Len() != 0 {
		t.Fatalf("expected no output, got %q / %q", sh.out.String(), sh.err.String())
	}
}

func TestExitAndQuit(t *testing.T) {
	sh := newTestShell(t, "")
	for _, line := range []string{"exit", "QUIT"} {
		if err := sh.Execute(line); !IsExit(err) {
			t.Fatalf("%s: expected exit, got %v", line, err)
		}
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	sh := newTestShell(t, "")
	if err := sh.Execute("help"); err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, cmd := range commandTable() {
		if !strings.Contains(sh.out.String(), cmd.Usage) {
			t.Fatalf("help is missing %q", cmd.Usage)
		}
	}
}

func TestFontByNumberAndName(t *testing.T) {
	sh := newTestShell(t, "")
	fonts := sh.renderer.Catalog().Fonts()
	if err := sh.Execute("font 2"); err != nil {
		t.Fatalf("font 2: %v", err)
	}
	if sh.Session().Font != fonts[1] {
		t.Fatalf("expected %q, got %q", fonts[1], sh.Session().Font)
	}
	if err := sh.Execute("font standard"); err != nil {
		t.Fatalf("font standard: %v", err)
	}
	if err := sh.Execute("font 0"); err == nil || figlet.UserMessage(err) != "Invalid number! Please enter valid font number." {
		t.Fatalf("expected invalid number, got %v", err)
	}
	if sh.Session().Font != "standard" {
		t.Fatalf("failed selection must keep the font, got %q", sh.Session().Font)
	}
}

func TestFailedFontLeavesLoopRunning(t *testing.T) {
	sh := newTestShell(t, "font nosuchfont\nwidth 33\n")
	run(t, sh)
	if !strings.Contains(sh.err.String(), "Invalid font name! Please enter valid font name.") {
		t.Fatalf("expected font failure, got %q", sh.err.String())
	}
	if sh.Session().Width != 33 {
		t.Fatalf("loop should continue after a failure")
	}
}

func TestRenderThenSave(t *testing.T) {
	sh := newTestShell(t, "")
	if err := sh.Execute(`render "Hi there"`); err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(sh.Session().Last) != 1 {
		t.Fatalf("expected a rendering to be kept")
	}
	path := filepath.Join(t.TempDir(), "out", "hi.txt")
	if err := sh.Execute("save " + path); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "### FONT: standard ###\n") {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestSaveWithoutRenderingWritesNothing(t *testing.T) {
	sh := newTestShell(t, "")
	_ = sh.Execute("font nosuchfont")
	if err := sh.Execute("save"); err == nil {
		t.Fatalf("expected error when nothing was rendered")
	}
	if _, err := os.Stat(sh.Session().Output); !os.IsNotExist(err) {
		t.Fatalf("no file should be written, stat err %v", err)
	}
}

func TestSaveAllWritesEveryFont(t *testing.T) {
	sh := newTestShell(t, "")
	if err := sh.Execute("saveall ok"); err != nil {
		t.Fatalf("saveall: %v", err)
	}
	data, err := os.ReadFile(sh.Session().Output)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got := strings.Count(string(data), "### FONT: ")
	if got == 0 || got != len(sh.Session().Last) {
		t.Fatalf("expected %d blocks, got %d", len(sh.Session().Last), got)
	}
}

func TestRandomPrintsHeader(t *testing.T) {
	sh := newTestShell(t, "")
	if err := sh.Execute("random hey"); err != nil {
		t.Fatalf("random: %v", err)
	}
	if !strings.HasPrefix(sh.out.String(), "### FONT: ") {
		t.Fatalf("expected header, got %q", sh.out.String())
	}
}

func TestSearch(t *testing.T) {
	sh := newTestShell(t, "")
	if err := sh.Execute("search stand"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(sh.out.String(), "standard") {
		t.Fatalf("expected standard in results, got %q", sh.out.String())
	}
	sh.out.Reset()
	if err := sh.Execute("search zzzqqq"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(sh.out.String(), "No fonts found") {
		t.Fatalf("expected warning, got %q", sh.out.String())
	}
	if err := sh.Execute("search"); err == nil {
		t.Fatalf("expected usage error")
	}
}

func TestCenterFillsTerminalWidth(t *testing.T) {
	sh := newTestShell(t, "")
	if err := sh.Execute("center Hi"); err != nil {
		t.Fatalf("center: %v", err)
	}
	for _, line := range layout.SplitLines(sh.out.String()) {
		if layout.VisibleLen(line) != 100 {
			t.Fatalf("expected width 100, got %d for %q", layout.VisibleLen(line), line)
		}
	}
}

func TestConfigSaveSkipsUnchangedFile(t *testing.T) {
	sh := newTestShell(t, "")
	if err := sh.Execute("width 60"); err != nil {
		t.Fatalf("width: %v", err)
	}
	if err := sh.Execute("config save"); err != nil {
		t.Fatalf("config save: %v", err)
	}
	data, err := os.ReadFile(sh.configPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "width: 60") {
		t.Fatalf("expected saved width, got %q", data)
	}
	sh.out.Reset()
	if err := sh.Execute("config save"); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if !strings.Contains(sh.out.String(), "already up to date") {
		t.Fatalf("expected unchanged notice, got %q", sh.out.String())
	}
	if err := sh.Execute("config frobnicate"); err == nil {
		t.Fatalf("expected usage error")
	}
}
