package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/BlockBooker/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,18}[0-9]$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// validateGuestInfo trims the input in place and reports the first failing field.
func validateGuestInfo(v *validator.Validate, info *domain.GuestInfo) error {
	info.Name = strings.TrimSpace(info.Name)
	info.Email = strings.TrimSpace(info.Email)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Group = strings.TrimSpace(info.Group)
	info.ProximityRequest = strings.TrimSpace(info.ProximityRequest)

	if err := v.Struct(info); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: guest %s is invalid (%s)", domain.ErrValidation, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if strings.EqualFold(info.ProximityRequest, info.Name) {
		return fmt.Errorf("%w: guest cannot request proximity to themselves", domain.ErrValidation)
	}

	return nil
}
