package api

import "errors"

// Request validation errors.
var (
	errInputURLRequired  = errors.New("url is required for LINK input")
	errInputTextRequired = errors.New("text is required for TEXTO input")
	errInputTypeUnknown  = errors.New("input_type must be LINK or TEXTO")
)
