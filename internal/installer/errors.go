package installer

import (
	"fmt"
	"strings"
)

// UnknownComponentError is returned when a component is not in the catalog.
type UnknownComponentError struct {
	Name      string
	Available []string
}

func (e *UnknownComponentError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("component %q not found", e.Name)
	}
	return fmt.Sprintf("component %q not found. Available components: %s", e.Name, strings.Join(e.Available, ", "))
}

// WriteError is returned when a file or directory cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// BatchError reports the component that stopped an install-all run.
// Components in Completed were written before the failure and are kept.
type BatchError struct {
	Component string
	Completed []string
	Err       error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("installing component %q: %v", e.Component, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
