package events

import "time"

// EventSource identifies this service on the bus.
const EventSource = "service-funnel"

// LeadDispatched is published every time a booking request is handed off to
// the messaging channel. The funnel has no booking backend of its own, so
// these events are the only record that a lead existed.
const LeadDispatched = "funnel.lead.dispatched"

// LeadDispatchedEvent carries lead analytics metadata. The composed message
// text itself stays out of the event: it holds customer contact details.
type LeadDispatchedEvent struct {
	RequestKind  string    `json:"request_kind"`
	Recipient    string    `json:"recipient"`
	MessageChars int       `json:"message_chars"`
	OccurredAt   time.Time `json:"occurred_at"`
}
