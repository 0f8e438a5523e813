package core

import (
	"errors"
	"fmt"
)

// Status is the outcome of a single job.
type Status int

const (
	StatusRendered Status = iota
	StatusSkipped
	StatusNoDiagram
	StatusMissingDependency
	StatusElementNotFound
	StatusFailed
)

var statusNames = map[Status]string{
	StatusRendered:          "rendered",
	StatusSkipped:           "skipped",
	StatusNoDiagram:         "no diagram",
	StatusMissingDependency: "missing dependency",
	StatusElementNotFound:   "element not found",
	StatusFailed:            "failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the inspectable outcome of a render or a whole job.
type Result struct {
	Job    Job
	Status Status
	Output string // written file, set only when Status is StatusRendered
	Err    error
}

// OK reports whether the output file was written.
func (r Result) OK() bool {
	return r.Status == StatusRendered
}

// ResultFromError classifies err into a Result.
// A nil error is not a success here: callers build rendered results themselves.
func ResultFromError(err error) Result {
	switch {
	case errors.Is(err, ErrBrowserNotFound):
		return Result{Status: StatusMissingDependency, Err: err}
	case errors.Is(err, ErrElementNotFound):
		return Result{Status: StatusElementNotFound, Err: err}
	case errors.Is(err, ErrNoDiagram):
		return Result{Status: StatusNoDiagram, Err: err}
	default:
		return Result{Status: StatusFailed, Err: err}
	}
}
