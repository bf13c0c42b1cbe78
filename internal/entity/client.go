package entity

import "time"

// Client is a monitored customer account as listed by the clients backend.
type Client struct {
	ClientID   int64     `json:"clientId"`
	ClientName string    `json:"clientName"`
	ServiceURL string    `json:"serviceUrl,omitempty"`
	LogoURL    string    `json:"logoUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// ClientInfo is the detailed read projection of one client.
type ClientInfo struct {
	ClientID     int64     `json:"clientId"`
	ClientName   string    `json:"clientName"`
	ServiceURL   string    `json:"serviceUrl,omitempty"`
	ManagerName  string    `json:"managerName,omitempty"`
	ManagerEmail string    `json:"managerEmail,omitempty"`
	ManagerPhone string    `json:"managerPhone,omitempty"`
	AccountID    string    `json:"accountId,omitempty"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Multipart field names of ClientForm.
const (
	FieldClientName      = "clientName"
	FieldServiceURL      = "serviceUrl"
	FieldManagerName     = "managerName"
	FieldManagerEmail    = "managerEmail"
	FieldManagerPhone    = "managerPhone"
	FieldAccountID       = "accountId"
	FieldAccountPassword = "accountPassword"
	FieldLogo            = "logo"
)

// ClientForm is the payload of create and update requests. It travels as multipart/form-data.
type ClientForm struct {
	ClientName      string
	ServiceURL      string
	ManagerName     string
	ManagerEmail    string
	ManagerPhone    string
	AccountID       string
	AccountPassword string
	Logo            *FormFile
}

type FormFile struct {
	Name        string
	ContentType string
	Data        []byte
}
