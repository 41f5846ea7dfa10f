package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryAssignment binds one driver to a non-empty set of orders.
// DriverID must reference an existing driver at create and at update time.
type DeliveryAssignment struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DeliveryID            string             `bson:"deliveryId" json:"deliveryId"`
	DriverID              primitive.ObjectID `bson:"driverId" json:"driverId"`
	OrderIDs              []string           `bson:"orderIds" json:"orderIds"`
	Status                AssignmentStatus   `bson:"status" json:"status"`
	AssignedDate          time.Time          `bson:"assignedDate" json:"assignedDate"`
	EstimatedDeliveryTime time.Time          `bson:"estimatedDeliveryTime" json:"estimatedDeliveryTime"`
	Notes                 string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
