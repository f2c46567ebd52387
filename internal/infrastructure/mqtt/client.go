package mqtt

import (
	"context"
	"fmt"
	"sync"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/config"
)

// Logger is the subset of logging.Logger used for connection events.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Client is a publish-only paho client bound to one site.
//
// It keeps a retained presence message on graylogic/hub/{site}/presence:
// "online" on every (re)connect, "offline" on Close, and "offline" with
// reason connection_lost from the broker's will if the hub disappears.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
type Client struct {
	paho   pahomqtt.Client
	cfg    config.MQTTConfig
	siteID string

	mu           sync.RWMutex
	connected    bool
	onConnect    func()
	onDisconnect func(err error)
	logger       Logger
}

// Connect dials the broker and publishes the online presence for siteID.
//
// Parameters:
//   - cfg: MQTT configuration from config.yaml
//   - siteID: Site the presence and will messages belong to
//
// Returns:
//   - *Client: Connected client; paho reconnects it automatically
//   - error: ErrConnectionFailed if the first connection does not succeed in time
func Connect(cfg config.MQTTConfig, siteID string) (*Client, error) {
	c := &Client{cfg: cfg, siteID: siteID}

	opts := newClientOptions(cfg, siteID)
	opts.SetOnConnectHandler(func(pahomqtt.Client) { c.handleConnect() })
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) { c.handleDisconnect(err) })
	opts.SetReconnectingHandler(func(pahomqtt.Client, *pahomqtt.ClientOptions) {
		if l := c.getLogger(); l != nil {
			l.Warn("MQTT reconnecting", "broker", brokerURL(cfg))
		}
	})

	c.paho = pahomqtt.NewClient(opts)
	token := c.paho.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	// The connect handler runs on its own goroutine and may lag behind.
	c.setConnected(true)
	return c, nil
}

func (c *Client) handleConnect() {
	c.setConnected(true)
	c.paho.Publish(Topics{}.Presence(c.siteID), 1, true,
		presencePayload(c.cfg, c.siteID, PresenceOnline, ""))

	c.mu.RLock()
	callback, logger := c.onConnect, c.logger
	c.mu.RUnlock()

	if logger != nil {
		logger.Info("MQTT connected", "broker", brokerURL(c.cfg), "site_id", c.siteID)
	}
	if callback != nil {
		callback()
	}
}

func (c *Client) handleDisconnect(err error) {
	c.setConnected(false)

	c.mu.RLock()
	callback, logger := c.onDisconnect, c.logger
	c.mu.RUnlock()

	if logger != nil {
		logger.Warn("MQTT connection lost", "error", err)
	}
	if callback != nil {
		callback(err)
	}
}

func (c *Client) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

// Close publishes the offline presence and disconnects.
// It is safe to call on a zero Client.
func (c *Client) Close() error {
	if c.paho == nil {
		return nil
	}

	if c.IsConnected() {
		token := c.paho.Publish(Topics{}.Presence(c.siteID), 1, true,
			presencePayload(c.cfg, c.siteID, PresenceOffline, ReasonShutdown))
		token.WaitTimeout(publishTimeout)
	}

	c.paho.Disconnect(disconnectQuiesceMs)
	c.setConnected(false)
	return nil
}

// HealthCheck returns ErrNotConnected unless the broker connection is up.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mqtt health check: %w", err)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}
	return nil
}

// IsConnected reports whether the client is currently connected.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected && c.paho != nil && c.paho.IsConnected()
}

// QoS returns the configured default QoS level.
func (c *Client) QoS() byte {
	return byte(c.cfg.QoS)
}

// SiteID returns the site the client publishes presence for.
func (c *Client) SiteID() string {
	return c.siteID
}

// SetOnConnect sets a callback run after every successful (re)connect.
func (c *Client) SetOnConnect(callback func()) {
	c.mu.Lock()
	c.onConnect = callback
	c.mu.Unlock()
}

// SetOnDisconnect sets a callback run when the connection is lost.
func (c *Client) SetOnDisconnect(callback func(err error)) {
	c.mu.Lock()
	c.onDisconnect = callback
	c.mu.Unlock()
}

// SetLogger sets the logger for connection events. Nil disables logging.
func (c *Client) SetLogger(logger Logger) {
	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

func (c *Client) getLogger() Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}
