package domain

import "time"

// AuditEntity names the kind of record an audit entry describes.
type AuditEntity string

const (
	AuditEntityUnknown   AuditEntity = "unknown"
	AuditEntityLoginRule AuditEntity = "LoginRule"
)

// Audit action labels.
const (
	AuditActionCreated = "Created"
	AuditActionUpdated = "Updated"
	AuditActionDeleted = "Deleted"
)

// EntityRef is a denormalized {id, name} snapshot of the audited record,
// captured at write time so history survives later renames and deletes.
type EntityRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Actor is a snapshot of the user who performed the audited action.
type Actor struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// AuditLog is an immutable, append-only record of a mutation. Entries are
// inserted once and never updated or deleted.
type AuditLog struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	EntityType  AuditEntity `json:"entity_type" bson:"entity_type"`
	EntityID    string      `json:"entity_id" bson:"entity_id"`
	Target      *EntityRef  `json:"target,omitempty" bson:"target,omitempty"`
	Action      string      `json:"action" bson:"action"`
	PerformedBy *Actor      `json:"performed_by,omitempty" bson:"performed_by,omitempty"`
	Description string      `json:"description" bson:"description"`
	Timestamp   time.Time   `json:"timestamp" bson:"timestamp"`
}
