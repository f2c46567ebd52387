package mqtt

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/config"
)

const (
	connectTimeout      = 10 * time.Second
	publishTimeout      = 5 * time.Second
	disconnectQuiesceMs = 1000
	keepAlive           = 60 * time.Second

	maxQoS         = 2
	maxPayloadSize = 1 << 20 // 1MB, typical broker limit
)

// Presence status values.
const (
	PresenceOnline  = "online"
	PresenceOffline = "offline"
)

// Presence reasons for an offline status.
const (
	ReasonShutdown   = "shutdown"
	ReasonConnection = "connection_lost" // published by the broker as the will
)

// Presence is the retained payload on graylogic/hub/{site}/presence.
type Presence struct {
	Status    string    `json:"status"`
	SiteID    string    `json:"site_id"`
	ClientID  string    `json:"client_id"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func presencePayload(cfg config.MQTTConfig, siteID, status, reason string) []byte {
	// A struct of strings and a time always marshals.
	data, _ := json.Marshal(Presence{
		Status:    status,
		SiteID:    siteID,
		ClientID:  cfg.Broker.ClientID,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
	return data
}

// newClientOptions maps the mqtt config section onto paho options.
//
// Sessions are clean and reconnects back off from Reconnect.InitialDelay to
// Reconnect.MaxDelay. The broker publishes an offline presence for siteID
// if the hub drops without closing.
func newClientOptions(cfg config.MQTTConfig, siteID string) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions().
		AddBroker(brokerURL(cfg)).
		SetClientID(cfg.Broker.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(time.Duration(cfg.Reconnect.InitialDelay) * time.Second).
		SetMaxReconnectInterval(time.Duration(cfg.Reconnect.MaxDelay) * time.Second).
		SetConnectTimeout(connectTimeout).
		SetKeepAlive(keepAlive)

	if cfg.Auth.Username != "" {
		opts.SetUsername(cfg.Auth.Username)
		opts.SetPassword(cfg.Auth.Password)
	}

	if cfg.Broker.TLS {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	opts.SetBinaryWill(
		Topics{}.Presence(siteID),
		presencePayload(cfg, siteID, PresenceOffline, ReasonConnection),
		1, true,
	)

	return opts
}

// brokerURL returns tcp://host:port, or ssl://host:port when TLS is enabled.
func brokerURL(cfg config.MQTTConfig) string {
	scheme := "tcp"
	if cfg.Broker.TLS {
		scheme = "ssl"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, cfg.Broker.Host, cfg.Broker.Port)
}
