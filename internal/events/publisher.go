package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/gray-logic-hub/internal/device"
	"github.com/nerrad567/gray-logic-hub/internal/hub"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/mqtt"
)

// MQTTClient is the interface for publishing to the broker.
type MQTTClient interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Logger defines the logging interface used by the Publisher.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// NotificationEvent is the payload of a notification message.
type NotificationEvent struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// DispatchEvent is the payload of a dispatch message.
type DispatchEvent struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Op        string    `json:"op"`
	Slot      *int      `json:"slot,omitempty"` // absent for undo
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusEvent is the payload of the retained status message.
type StatusEvent struct {
	ID        string     `json:"id"`
	SiteID    string     `json:"site_id"`
	Report    hub.Report `json:"report"`
	Timestamp time.Time  `json:"timestamp"`
}

// DeviceStateEvent is the payload of a retained device state message.
type DeviceStateEvent struct {
	ID        string       `json:"id"`
	SiteID    string       `json:"site_id"`
	DeviceID  string       `json:"device_id"`
	State     device.State `json:"state"`
	Timestamp time.Time    `json:"timestamp"`
}

// DefaultQueueSize is the number of messages buffered ahead of the broker.
const DefaultQueueSize = 256

// Publisher sends hub activity to MQTT.
//
// Payloads are built by the caller and queued; one goroutine hands them to
// the client in order. Messages are dropped, with a warning, when the queue
// is full or the Publisher is closed.
//
// Thread Safety: safe for concurrent use.
type Publisher struct {
	client MQTTClient
	siteID string
	qos    byte
	topics mqtt.Topics
	logger Logger
	now    func() time.Time

	mu     sync.RWMutex // guards closed and sends on queue
	closed bool
	queue  chan outbound
	done   chan struct{}
}

// outbound is either an encoded message or a flush marker.
type outbound struct {
	topic    string
	data     []byte
	retained bool
	flushed  chan struct{}
}

// NewPublisher creates a publisher for one site.
//
// Parameters:
//   - client: MQTT client (usually *mqtt.Client)
//   - siteID: Site identifier used in topics and payloads
//   - qos: QoS level for every publish
//   - logger: Logger for publish failures (may be nil)
//
// Call Close to flush queued messages and stop the sender.
func NewPublisher(client MQTTClient, siteID string, qos byte, logger Logger) *Publisher {
	return newPublisher(client, siteID, qos, logger, DefaultQueueSize)
}

func newPublisher(client MQTTClient, siteID string, qos byte, logger Logger, queueSize int) *Publisher {
	if logger == nil {
		logger = noopLogger{}
	}
	p := &Publisher{
		client: client,
		siteID: siteID,
		qos:    qos,
		logger: logger,
		now:    time.Now,
		queue:  make(chan outbound, queueSize),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

// Notify implements device.Notifier.
func (p *Publisher) Notify(message string) {
	p.publish(p.topics.Notification(p.siteID), false, NotificationEvent{
		ID:        newEventID(),
		SiteID:    p.siteID,
		Message:   message,
		Timestamp: p.now().UTC(),
	})
}

// ObserveDispatch implements hub.Observer.
func (p *Publisher) ObserveDispatch(d hub.Dispatch) {
	evt := DispatchEvent{
		ID:        newEventID(),
		SiteID:    p.siteID,
		Op:        string(d.Op),
		Action:    d.Action,
		Timestamp: d.At.UTC(),
	}
	if d.Op != hub.OpUndo {
		slot := d.Slot
		evt.Slot = &slot
	}
	p.publish(p.topics.Dispatch(p.siteID, string(d.Op)), false, evt)
}

// PublishStatus publishes the hub status report as a retained message.
func (p *Publisher) PublishStatus(r hub.Report) {
	p.publish(p.topics.Status(p.siteID), true, StatusEvent{
		ID:        newEventID(),
		SiteID:    p.siteID,
		Report:    r,
		Timestamp: p.now().UTC(),
	})
}

// PublishDeviceStates publishes one retained state message per device.
func (p *Publisher) PublishDeviceStates(states map[string]device.State) {
	now := p.now().UTC()
	for id, state := range states {
		p.publish(p.topics.DeviceState(p.siteID, id), true, DeviceStateEvent{
			ID:        newEventID(),
			SiteID:    p.siteID,
			DeviceID:  id,
			State:     state,
			Timestamp: now,
		})
	}
}

// Flush blocks until every message queued before the call has been
// handed to the client, or ctx is done.
func (p *Publisher) Flush(ctx context.Context) error {
	flushed := make(chan struct{})

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil
	}
	select {
	case p.queue <- outbound{flushed: flushed}:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-flushed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close sends any queued messages and stops the sender. It is safe to call
// more than once.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	<-p.done
	return nil
}

// publish encodes payload and queues it without blocking.
func (p *Publisher) publish(topic string, retained bool, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("event marshal failed", "topic", topic, "error", err)
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.logger.Warn("event dropped", "reason", "publisher closed", "topic", topic)
		return
	}
	select {
	case p.queue <- outbound{topic: topic, data: data, retained: retained}:
	default:
		p.logger.Warn("event dropped", "reason", "queue full", "topic", topic)
	}
}

// run drains the queue in order until it is closed.
func (p *Publisher) run() {
	defer close(p.done)
	for m := range p.queue {
		if m.flushed != nil {
			close(m.flushed)
			continue
		}
		if err := p.client.Publish(m.topic, m.data, p.qos, m.retained); err != nil {
			p.logger.Warn("event publish failed", "topic", m.topic, "error", err)
			continue
		}
		p.logger.Debug("event published", "topic", m.topic)
	}
}

func newEventID() string {
	return "evt-" + uuid.NewString()[:8]
}
