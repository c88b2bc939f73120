package binder

import (
	"fmt"

	"github.com/animalet/propconf-go/pkg/schema"
)

// ConversionError reports a property value that could not be parsed as the
// declared slot, element, key or value kind. It aborts the bind that
// produced it.
type ConversionError struct {
	KeyPath string
	Value   string
	Kind    schema.Kind
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s for key %q: %v", e.Value, e.Kind, e.KeyPath, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// UnsupportedContainerTypeError reports a slot whose declared concrete
// container variant is not one the binder recognizes.
type UnsupportedContainerTypeError struct {
	KeyPath   string
	Container schema.Container
}

func (e *UnsupportedContainerTypeError) Error() string {
	return fmt.Sprintf("unsupported container type %q for key %q", string(e.Container), e.KeyPath)
}

// BindingAccessError reports a slot that rejected a write, either because it
// is frozen or because a bound setter failed.
type BindingAccessError struct {
	KeyPath string
	Err     error
}

func (e *BindingAccessError) Error() string {
	return fmt.Sprintf("cannot write slot for key %q: %v", e.KeyPath, e.Err)
}

func (e *BindingAccessError) Unwrap() error { return e.Err }
