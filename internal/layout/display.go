package layout

import (
	"fmt"
	"io"
	"time"
)

// ClearScreen homes the cursor and erases the display.
const ClearScreen = "\x1b[H\x1b[2J"

const (
	blinkFrames = 3
	blinkOn     = 300 * time.Millisecond
	blinkOff    = 100 * time.Millisecond
)

// DisplayOptions controls how Display draws a centered block.
type DisplayOptions struct {
	CenterOptions
	Clear   bool
	Animate bool
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Display writes lines centered for size. With Animate set it blinks the
// block a few times before the final draw.
func Display(w io.Writer, lines []string, size Size, opts DisplayOptions) error {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	clearScreen := func() error {
		if !opts.Clear {
			return nil
		}
		_, err := io.WriteString(w, ClearScreen)
		return err
	}
	if err := clearScreen(); err != nil {
		return err
	}

	text := Center(lines, size, opts.CenterOptions)
	if opts.Animate {
		for range blinkFrames {
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
			sleep(blinkOn)
			if err := clearScreen(); err != nil {
				return err
			}
			sleep(blinkOff)
		}
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
