// internal/models/audit.go
package models

// AuditLog records admin-initiated catalog mutations: one row per non-GET
// admin request, written asynchronously by the audit middleware.
type AuditLog struct {
	BaseModel
	Username     string `json:"username" gorm:"size:100;index"`
	Action       string `json:"action" gorm:"size:100;not null;index"`
	ResourceType string `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   string `json:"resource_id" gorm:"size:64;index"`
	IPAddress    string `json:"ip_address" gorm:"size:45"`
	UserAgent    string `json:"user_agent" gorm:"type:text"`
}
