package dto

// CreateDriverRequest is the payload for registering a driver. Status and
// timestamps are set by the service, not the caller.
type CreateDriverRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

// UpdateDriverRequest is the full replacement document for a driver.
type UpdateDriverRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=Active Inactive"`
}
