package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Console writes notification lines to w, one per line.
//
// With colour enabled, activations are green, deactivations yellow,
// temperature changes cyan and status report lines bold.
type Console struct {
	mu sync.Mutex
	w  io.Writer

	on     *color.Color
	off    *color.Color
	temp   *color.Color
	report *color.Color
	plain  *color.Color
}

// NewConsole creates a console notifier writing to w.
// colorize forces ANSI colours on or off regardless of the terminal type.
func NewConsole(w io.Writer, colorize bool) *Console {
	c := &Console{
		w:      w,
		on:     color.New(color.FgGreen),
		off:    color.New(color.FgYellow),
		temp:   color.New(color.FgCyan),
		report: color.New(color.Bold),
		plain:  color.New(color.Reset),
	}
	for _, col := range []*color.Color{c.on, c.off, c.temp, c.report, c.plain} {
		if colorize {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Notify writes message followed by a newline.
func (c *Console) Notify(message string) {
	col := c.colorFor(message)

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, col.Sprint(message))
}

func (c *Console) colorFor(message string) *color.Color {
	switch {
	case strings.Contains(message, " is ON"):
		return c.on
	case strings.Contains(message, " is OFF"):
		return c.off
	case strings.Contains(message, "temperature"):
		return c.temp
	case strings.HasPrefix(message, "Slot "),
		strings.HasPrefix(message, "Last Command:"),
		strings.HasPrefix(message, "==="):
		return c.report
	default:
		return c.plain
	}
}
