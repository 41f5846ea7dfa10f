package dto

// CreateNotificationRequest is the payload for dispatching a notification.
// UserID is the recipient address (an email, by system convention).
// Status is accepted but overwritten by the dispatcher's own lifecycle.
type CreateNotificationRequest struct {
	UserID     string `json:"userId" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=Email SMS"`
	Title      string `json:"title" validate:"required"`
	Message    string `json:"message"`
	DeliveryID string `json:"deliveryId"`
	Status     string `json:"status" validate:"omitempty,oneof=Pending Sent Failed"`
}

// UpdateNotificationRequest is the full replacement document for a
// notification. Updating never re-triggers delivery.
type UpdateNotificationRequest struct {
	UserID     string `json:"userId" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=Email SMS"`
	Title      string `json:"title" validate:"required"`
	Message    string `json:"message"`
	DeliveryID string `json:"deliveryId"`
	IsRead     bool   `json:"isRead"`
	Status     string `json:"status" validate:"required,oneof=Pending Sent Failed"`
}
