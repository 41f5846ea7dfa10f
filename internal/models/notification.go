package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification records a message sent (or attempted) to a recipient.
// UserID holds the recipient's email address, not a driver id - a
// convention inherited from the rest of the system.
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Type       NotificationType   `bson:"type" json:"type"`
	Title      string             `bson:"title" json:"title"`
	Message    string             `bson:"message" json:"message"`
	IsRead     bool               `bson:"isRead" json:"isRead"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	DeliveryID string             `bson:"deliveryId,omitempty" json:"deliveryId,omitempty"`
	Status     NotificationStatus `bson:"status" json:"status"`
}
