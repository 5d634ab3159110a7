package dto

import (
	"slices"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the portal specific tags used in binding rules:
// "portalrole" accepts a role of the hierarchy and "department" one of the
// portal departments.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("portalrole", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Departments, fl.Field().String())
	})
}
