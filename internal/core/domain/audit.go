package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionConnect       AuditAction = "CONNECT"
	AuditActionDisconnect    AuditAction = "DISCONNECT"
	AuditActionPublish       AuditAction = "PUBLISH"
	AuditActionPlay          AuditAction = "PLAY"
	AuditActionAccessDenied  AuditAction = "ACCESS_DENIED"
	AuditActionPlayerControl AuditAction = "PLAYER_CONTROL"
)

// AuditLog records a single audited action.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Address      *string     `json:"address,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
