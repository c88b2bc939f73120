package placeholder

import "fmt"

// CircularReferenceError reports a placeholder whose resolution re-entered
// itself, directly or through other placeholders.
type CircularReferenceError struct {
	Name string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular placeholder reference %q in property definitions", e.Name)
}

// UnresolvedPlaceholderError reports a placeholder with no value in strict
// mode. Value is the text the placeholder appeared in.
type UnresolvedPlaceholderError struct {
	Name  string
	Value string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("could not resolve placeholder %q in value %q", e.Name, e.Value)
}
