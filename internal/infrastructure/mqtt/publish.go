package mqtt

import "fmt"

// Publish sends payload to topic and waits for the broker acknowledgement.
//
// Retain state-like messages (status report, device state) so that late
// subscribers see the current value; never retain dispatch events.
//
// Returns:
//   - ErrInvalidTopic, ErrInvalidQoS: Bad arguments
//   - ErrNotConnected: The client is between reconnects
//   - ErrPublishFailed: Oversized payload, timeout or broker error
//
// Example:
//
//	topic := mqtt.Topics{}.Notification("site-001")
//	err := client.Publish(topic, []byte(`{"message":"Kitchen light is OFF"}`), 1, false)
func (c *Client) Publish(topic string, payload []byte, qos byte, retained bool) error {
	switch {
	case topic == "":
		return ErrInvalidTopic
	case qos > maxQoS:
		return ErrInvalidQoS
	case len(payload) > maxPayloadSize:
		return fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrPublishFailed, len(payload), maxPayloadSize)
	case !c.IsConnected():
		return ErrNotConnected
	}

	token := c.paho.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}
