package dto

import "time"

// CreateDeliveryAssignmentRequest is the payload for creating an
// assignment. Status and assignedDate submitted by the caller are ignored:
// the service forces Pending and the creation instant.
type CreateDeliveryAssignmentRequest struct {
	DeliveryID            string    `json:"deliveryId" validate:"required"`
	DriverID              string    `json:"driverId" validate:"required,objectid"`
	OrderIDs              []string  `json:"orderIds" validate:"omitempty,dive,required"`
	Status                string    `json:"status" validate:"omitempty,oneof=Pending InProgress Completed Cancelled"`
	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
	Notes                 string    `json:"notes"`
}

// UpdateDeliveryAssignmentRequest is the full replacement document for an
// assignment. A status differing from the stored one triggers a
// status-change notification.
type UpdateDeliveryAssignmentRequest struct {
	DeliveryID            string    `json:"deliveryId" validate:"required"`
	DriverID              string    `json:"driverId" validate:"required,objectid"`
	OrderIDs              []string  `json:"orderIds" validate:"omitempty,dive,required"`
	Status                string    `json:"status" validate:"required,oneof=Pending InProgress Completed Cancelled"`
	EstimatedDeliveryTime time.Time `json:"estimatedDeliveryTime"`
	Notes                 string    `json:"notes"`
}
