package leanterm

import "github.com/pkg/errors"

// ErrMalformed wraps any payload that doesn't match the external JSON
// schema's shape for the tag it declares.
var ErrMalformed = errors.New("lean term: malformed payload")

// ErrUnknownVariant wraps any tag not present in the external schema.
var ErrUnknownVariant = errors.New("lean term: unknown variant")
