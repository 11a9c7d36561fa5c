package login

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BikeRental/pkg/validation"
)

func (uc *UseCase) validate(req interface{}) error {
	err := uc.validator.Struct(req)
	if err == nil {
		return nil
	}
	if fields := validation.FieldErrors(err); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func normalizeProfile(req *ProfileRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
}
