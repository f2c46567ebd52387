// Package mqtt provides MQTT client connectivity for Gray Logic Hub.
//
// This package manages:
//   - Connection to a Mosquitto broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Retained per-site presence, with a broker-side will for crashes
//   - Connection health monitoring
//
// # Architecture
//
// The hub only publishes. Device notifications, dispatch events and status
// reports leave the process on the graylogic/hub/{site}/... topics; nothing
// is read back from the broker.
//
//	Gray Logic Hub → MQTT Broker → dashboards, loggers, other services
//
// # Security Considerations
//
//   - Enable TLS for anything beyond a local broker (cfg.Broker.TLS=true)
//   - Credentials should come from GRAYLOGIC_MQTT_USERNAME/PASSWORD
//   - Payloads are not encrypted beyond TLS transport
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT, cfg.Site.ID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.Notification("site-001")
//	client.Publish(topic, []byte(`{"message":"Kitchen light is OFF"}`), 1, false)
package mqtt
