package hub

import (
	"fmt"
	"strings"
)

// Report header and footer lines.
const (
	reportHeader = "=== Smart Home Hub Status ==="
	reportFooter = "============================="
)

// SlotStatus names the actions bound to one slot.
type SlotStatus struct {
	Index      int    `json:"index"`
	Activate   string `json:"activate"`
	Deactivate string `json:"deactivate"`
}

// Report is a snapshot of the slot table and the last action.
type Report struct {
	Slots      []SlotStatus `json:"slots"`
	LastAction string       `json:"last_action"`
}

// Lines renders the report as human-readable lines:
//
//	=== Smart Home Hub Status ===
//	Slot 0: LightOn | LightOff
//	...
//	Last Command: NoOp
//	=============================
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Slots)+3)
	lines = append(lines, reportHeader)
	for _, s := range r.Slots {
		lines = append(lines, fmt.Sprintf("Slot %d: %s | %s", s.Index, s.Activate, s.Deactivate))
	}
	lines = append(lines, "Last Command: "+r.LastAction, reportFooter)
	return lines
}

// String joins Lines with newlines.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
