package models

import "time"

type ActivityLog struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Actor      string    `bson:"actor" json:"actor"`
	ActorEmail string    `bson:"actorEmail,omitempty" json:"actorEmail,omitempty"`
	ClinicID   string    `bson:"clinicId,omitempty" json:"clinicId,omitempty"`
	Action     string    `bson:"action" json:"action"`
	Path       string    `bson:"path,omitempty" json:"path,omitempty"`
	Detail     string    `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ActivityLogFilter narrows List queries. Zero values mean "no constraint".
type ActivityLogFilter struct {
	Actor    string
	ClinicID string
	Action   string
	From     time.Time
	To       time.Time
}
