package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrFormatViolation = errors.New("model response violates required format")
	ErrPromptMissing   = errors.New("required prompt is missing")
	ErrValidation      = errors.New("validation failed")
)
