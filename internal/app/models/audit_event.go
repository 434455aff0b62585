package models

import "time"

// AuditEvent is the queue-bound copy of a security-relevant activity. Guard
// denials and auth events are published so downstream consumers (alerting,
// compliance) see them without polling the log store.
type AuditEvent struct {
	Actor      string    `json:"actor"`
	ClinicID   string    `json:"clinicId,omitempty"`
	Action     string    `json:"action"`
	Path       string    `json:"path,omitempty"`
	Capability string    `json:"capability,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
