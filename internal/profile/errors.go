package profile

import (
	"errors"
	"fmt"
)

// ErrMalformedEnvelope reports that the plist payload markers could not be
// located in a mobileprovision envelope.
var ErrMalformedEnvelope = errors.New("malformed envelope: plist markers not found")

// MissingFieldError reports a required plist key absent from the payload.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Key)
}

// InvalidFieldError reports a plist key whose value has an unexpected type.
type InvalidFieldError struct {
	Key string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("field %q has unexpected type", e.Key)
}
