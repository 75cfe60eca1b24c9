package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates a sale requested more units than are on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInvalidFormat indicates a backup payload parsed but matched no known shape.
var ErrInvalidFormat = errors.New("invalid backup format")

// ErrParseFailure indicates a backup payload could not be parsed at all.
var ErrParseFailure = errors.New("backup parse failure")
