package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nerrad567/gray-logic-hub/internal/device"
)

const shellHelp = `Commands:
  on N               trigger the activate action of slot N
  off N              trigger the deactivate action of slot N
  undo               undo the last action
  status             print the slot table and last action
  devices            list devices and their state
  power ID on|off    switch a device directly, bypassing the hub
  history [N]        show the last N audited dispatches (default 10)
  help               show this help
  quit               exit`

// shell is the interactive command loop.
type shell struct {
	app *app
	out io.Writer
}

func newShell(a *app, out io.Writer) *shell {
	return &shell{app: a, out: out}
}

// Run reads commands from in until quit, end of input or ctx is cancelled.
func (s *shell) Run(ctx context.Context, in io.Reader) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprintln(s.out, "Gray Logic Hub ready. Type 'help' for commands.")
	for {
		fmt.Fprint(s.out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return
		case line, ok := <-lines:
			if !ok || !s.execute(ctx, line) {
				return
			}
		}
	}
}

// execute runs one command line. It returns false when the shell should exit.
// Command words are case-insensitive; device IDs are matched exactly.
func (s *shell) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	fields[0] = strings.ToLower(fields[0])

	h := s.app.home.Hub
	switch fields[0] {
	case "on", "off":
		slot, ok := s.slotArg(fields)
		if !ok {
			return true
		}
		if fields[0] == "on" {
			h.TriggerActivate(slot)
		} else {
			h.TriggerDeactivate(slot)
		}
	case "undo":
		h.UndoLast()
	case "status":
		s.app.publishStatus()
	case "devices":
		for _, d := range s.app.home.Devices.List() {
			fmt.Fprintf(s.out, "  %-24s %s\n", d.ID(), d.Describe())
		}
	case "power":
		s.power(fields)
	case "history":
		s.history(ctx, fields)
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q (type 'help')\n", fields[0])
	}
	return true
}

func (s *shell) slotArg(fields []string) (int, bool) {
	if len(fields) != 2 {
		fmt.Fprintf(s.out, "usage: %s N\n", fields[0])
		return 0, false
	}
	slot, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Fprintf(s.out, "invalid slot %q\n", fields[1])
		return 0, false
	}
	if n := s.app.home.Hub.SlotCount(); slot < 0 || slot >= n {
		fmt.Fprintf(s.out, "no slot %d (hub has slots 0..%d)\n", slot, n-1)
		return 0, false
	}
	return slot, true
}

func (s *shell) power(fields []string) {
	if len(fields) == 3 {
		fields[2] = strings.ToLower(fields[2])
	}
	if len(fields) != 3 || (fields[2] != "on" && fields[2] != "off") {
		fmt.Fprintln(s.out, "usage: power ID on|off")
		return
	}
	d, err := s.app.home.Devices.Get(fields[1])
	if err != nil {
		fmt.Fprintf(s.out, "%s: %v (known: %s)\n", fields[1], err, strings.Join(s.app.home.Devices.IDs(), ", "))
		return
	}
	setPower(d, fields[2] == "on")
}

// defaultHistory is the number of entries history prints without N.
const defaultHistory = 10

func (s *shell) history(ctx context.Context, fields []string) {
	limit := defaultHistory
	if len(fields) > 2 {
		fmt.Fprintln(s.out, "usage: history [N]")
		return
	}
	if len(fields) == 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(s.out, "invalid count %q\n", fields[1])
			return
		}
		limit = n
	}

	logs, err := s.app.history(ctx, limit)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if len(logs) == 0 {
		fmt.Fprintln(s.out, "no dispatches recorded")
		return
	}
	for _, l := range logs {
		slot := "-"
		if l.Slot != nil {
			slot = strconv.Itoa(*l.Slot)
		}
		fmt.Fprintf(s.out, "  %s  %-10s %-4s %-18s %s\n",
			l.CreatedAt.Local().Format(time.DateTime), l.Op, slot, l.Action, l.Source)
	}
}

func setPower(d device.Device, on bool) {
	if on {
		d.Activate()
		return
	}
	d.Deactivate()
}
