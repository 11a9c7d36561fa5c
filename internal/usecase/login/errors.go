package login

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation возвращается, когда поля формы не прошли проверку
	ErrValidation = errors.New("validation failed")

	// ErrWrongStep возвращается, когда действие не соответствует текущему шагу входа
	ErrWrongStep = errors.New("action is not allowed at the current login step")

	// ErrVerificationFailed возвращается, когда код не подтвержден
	ErrVerificationFailed = errors.New("OTP verification failed")

	// ErrUpstream возвращается, когда API проката недоступно
	ErrUpstream = errors.New("authentication service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// ValidationError ошибки валидации по полям формы
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
