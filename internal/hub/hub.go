package hub

import (
	"sync"
	"time"

	"github.com/nerrad567/gray-logic-hub/internal/command"
	"github.com/nerrad567/gray-logic-hub/internal/device"
)

// DefaultSlotCount is the number of slots used when New is given a
// non-positive count.
const DefaultSlotCount = 7

// Slot holds the action pair bound to one hub position.
type Slot struct {
	Activate   command.Action
	Deactivate command.Action
}

// Hub dispatches slot triggers to their bound actions and remembers the
// last one for undo.
//
// Invariant: no slot action and no last action is ever nil.
type Hub struct {
	mu         sync.Mutex
	slots      []Slot
	lastAction command.Action

	notifier device.Notifier
	observer Observer
	logger   Logger
	now      func() time.Time
}

// New creates a hub with the given number of slots, all bound to NoOp.
//
// Parameters:
//   - slots: Number of slots; values <= 0 use DefaultSlotCount
//   - opts: Optional collaborators (notifier, observer, logger, clock)
func New(slots int, opts ...Option) *Hub {
	if slots <= 0 {
		slots = DefaultSlotCount
	}

	h := &Hub{
		slots:      make([]Slot, slots),
		lastAction: command.NoOp{},
		notifier:   device.NoopNotifier{},
		observer:   noopObserver{},
		logger:     noopLogger{},
		now:        time.Now,
	}
	for i := range h.slots {
		h.slots[i] = Slot{Activate: command.NoOp{}, Deactivate: command.NoOp{}}
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// SlotCount returns the fixed number of slots.
func (h *Hub) SlotCount() int {
	return len(h.slots)
}

// Register binds an action pair to a slot, replacing whatever was there.
// Nil actions are stored as NoOp. Out-of-range indexes are ignored.
func (h *Hub) Register(index int, activate, deactivate command.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.inRange(index) {
		h.logger.Debug("register ignored: slot out of range", "slot", index, "slots", len(h.slots))
		return
	}

	h.slots[index] = Slot{
		Activate:   command.OrNoOp(activate),
		Deactivate: command.OrNoOp(deactivate),
	}
	h.logger.Debug("slot registered", "slot", index,
		"activate", h.slots[index].Activate.Name(),
		"deactivate", h.slots[index].Deactivate.Name())
}

// TriggerActivate executes the activate action of a slot and records it as
// the last action. Out-of-range indexes are ignored.
func (h *Hub) TriggerActivate(index int) {
	h.trigger(index, OpActivate)
}

// TriggerDeactivate executes the deactivate action of a slot and records it
// as the last action. Out-of-range indexes are ignored.
func (h *Hub) TriggerDeactivate(index int) {
	h.trigger(index, OpDeactivate)
}

func (h *Hub) trigger(index int, op Op) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.inRange(index) {
		h.logger.Debug("trigger ignored: slot out of range", "op", op, "slot", index, "slots", len(h.slots))
		return
	}

	action := h.slots[index].Activate
	if op == OpDeactivate {
		action = h.slots[index].Deactivate
	}

	action.Execute()
	h.lastAction = action

	h.observer.ObserveDispatch(Dispatch{Op: op, Slot: index, Action: action.Name(), At: h.now()})
}

// UndoLast reverses the last executed action.
//
// The last action is left in place, so calling UndoLast again applies the
// same reversal again. Before any trigger it undoes NoOp.
func (h *Hub) UndoLast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastAction.Undo()

	h.observer.ObserveDispatch(Dispatch{Op: OpUndo, Slot: UndoSlot, Action: h.lastAction.Name(), At: h.now()})
}

// LastAction returns the variant name of the last executed action.
func (h *Hub) LastAction() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastAction.Name()
}

// Slot returns the action pair bound to index. ok is false when index is
// out of range.
func (h *Hub) Slot(index int) (slot Slot, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.inRange(index) {
		return Slot{}, false
	}
	return h.slots[index], true
}

// StatusReport returns the action names bound to every slot and the name of
// the last action. It does not change hub state.
func (h *Hub) StatusReport() Report {
	h.mu.Lock()
	defer h.mu.Unlock()

	r := Report{
		Slots:      make([]SlotStatus, len(h.slots)),
		LastAction: h.lastAction.Name(),
	}
	for i, s := range h.slots {
		r.Slots[i] = SlotStatus{Index: i, Activate: s.Activate.Name(), Deactivate: s.Deactivate.Name()}
	}
	return r
}

// PublishStatus sends each line of the status report to the hub's notifier.
func (h *Hub) PublishStatus() {
	for _, line := range h.StatusReport().Lines() {
		h.notifier.Notify(line)
	}
}

// inRange reads only the slot count, which is fixed after New.
func (h *Hub) inRange(index int) bool {
	return index >= 0 && index < len(h.slots)
}
