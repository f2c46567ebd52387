package mqtt

import "fmt"

// TopicPrefixHub is the base of every hub topic. Topics are scoped by
// site: graylogic/hub/{site}/{category}[/{id}]
const TopicPrefixHub = "graylogic/hub"

// Topics provides builders for Gray Logic Hub MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	topic := topics.Dispatch("site-001", "activate")
//	// Returns: "graylogic/hub/site-001/dispatch/activate"
type Topics struct{}

// Notification returns the topic for human-readable notification lines.
//
// Example: graylogic/hub/site-001/notification
func (Topics) Notification(siteID string) string {
	return fmt.Sprintf("%s/%s/notification", TopicPrefixHub, siteID)
}

// Dispatch returns the topic for dispatch events of one operation.
//
// Example: graylogic/hub/site-001/dispatch/undo
func (Topics) Dispatch(siteID, op string) string {
	return fmt.Sprintf("%s/%s/dispatch/%s", TopicPrefixHub, siteID, op)
}

// Status returns the topic for the retained hub status report.
//
// Example: graylogic/hub/site-001/status
func (Topics) Status(siteID string) string {
	return fmt.Sprintf("%s/%s/status", TopicPrefixHub, siteID)
}

// DeviceState returns the topic for retained device state snapshots.
//
// Example: graylogic/hub/site-001/device/kitchen-light/state
func (Topics) DeviceState(siteID, deviceID string) string {
	return fmt.Sprintf("%s/%s/device/%s/state", TopicPrefixHub, siteID, deviceID)
}

// Presence returns the topic for the retained online/offline presence.
//
// Example: graylogic/hub/site-001/presence
func (Topics) Presence(siteID string) string {
	return fmt.Sprintf("%s/%s/presence", TopicPrefixHub, siteID)
}
