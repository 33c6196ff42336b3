package check

import (
	"errors"
	"fmt"
)

// New returns a passing result with the given label.
func New(name string) Result {
	return Result{Name: name, Status: StatusOK}
}

// Newf returns a passing result with a formatted label.
func Newf(format string, args ...any) Result {
	return New(fmt.Sprintf(format, args...))
}

// Fail marks the result as failed with a new label.
func (r *Result) Fail(name string, err error) Result {
	r.Name = name
	r.Status = StatusFail
	if err == nil {
		err = errors.New(name)
	}
	r.Err = err
	return *r
}

// Failf marks the result as failed with a formatted label.
func (r *Result) Failf(format string, args ...any) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Warn marks the result as a non-fatal warning with a new label.
func (r *Result) Warn(name string) Result {
	r.Name = name
	r.Status = StatusWarn
	return *r
}

// Warnf marks the result as a warning with a formatted label.
func (r *Result) Warnf(format string, args ...any) Result {
	return r.Warn(fmt.Sprintf(format, args...))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// WithHint sets the remediation line.
func (r *Result) WithHint(hint string) *Result {
	r.Hint = hint
	return r
}
