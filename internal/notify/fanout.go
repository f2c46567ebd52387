package notify

import "github.com/nerrad567/gray-logic-hub/internal/device"

// Fanout sends each notification to every non-nil notifier in order.
type Fanout []device.Notifier

// Notify forwards message to all notifiers.
func (f Fanout) Notify(message string) {
	for _, n := range f {
		if n != nil {
			n.Notify(message)
		}
	}
}
