package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver is a courier account. Email is the unique business key and the
// recipient address for driver notifications.
type Driver struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	PhoneNumber   string             `bson:"phoneNumber" json:"phoneNumber"`
	LicenseNumber string             `bson:"licenseNumber" json:"licenseNumber"`
	Status        DriverStatus       `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	LastUpdated   time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
