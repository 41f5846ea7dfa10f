package validator

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs validation rules specific to this system.
func registerCustomRules(v *validator.Validate) error {
	// objectid: a store-generated 24-character hex id. Malformed ids are
	// rejected at the boundary before reaching the services.
	return v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	})
}
