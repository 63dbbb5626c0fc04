package entity

import "time"

// MenuChangedEvent is fanned out to other instances after a product write.
type MenuChangedEvent struct {
	RequestID string    `json:"request_id,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
	Operation string    `json:"operation"`
	ChangedAt time.Time `json:"changed_at"`
}

// Menu change operations.
const (
	MenuOpCreate = "create"
	MenuOpUpdate = "update"
	MenuOpDelete = "delete"
)
