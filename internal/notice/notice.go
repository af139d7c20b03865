// Package notice carries the outcome of a write operation back to the
// presentation layer as a plain value instead of a flash-message side
// channel.
package notice

import "fmt"

type Kind string

const (
	Success    Kind = "success"
	Validation Kind = "validation"
	Conflict   Kind = "conflict"
	Failure    Kind = "failure"
)

type Result struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Successf(format string, args ...any) Result {
	return Result{Kind: Success, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) Result {
	return Result{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) Result {
	return Result{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

func Failuref(format string, args ...any) Result {
	return Result{Kind: Failure, Message: fmt.Sprintf(format, args...)}
}
