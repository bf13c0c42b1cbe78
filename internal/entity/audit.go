package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	default:
		return false
	}
}

type AuditEntry struct {
	ID        uuid.UUID   `json:"id"`
	ClientID  int64       `json:"clientId"`
	Action    AuditAction `json:"action"`
	UserID    uuid.UUID   `json:"userId"`
	UserEmail string      `json:"userEmail"`
	UserIP    string      `json:"userIp,omitempty"`
	RequestID string      `json:"requestId"`
	CreatedAt time.Time   `json:"createdAt"`
}

type AuditFilter struct {
	ClientID int64
	Action   AuditAction
	Page     uint64
	Limit    uint64
}
