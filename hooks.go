package result

import "fmt"

// Sink receives failures raised by hook callbacks.
// A nil Sink is a valid configuration: failures are silently discarded.
type Sink interface {
	ReportHookFailure(err error, message string)
}

// OnSuccess invokes fn with the success value when the outcome succeeded and
// carries a value. The outcome is returned unchanged either way, so hooks
// chain fluently.
//
// Errors returned by fn, and panics it raises, never propagate to the
// caller; they are reported to sink when one is supplied. An observer's bug
// must not turn a successful outcome into a pipeline fault.
func (o Outcome[T]) OnSuccess(fn func(T) error, sink Sink) Outcome[T] {
	if fn != nil && o.succeeded && o.hasValue {
		runHook(sink, "success hook callback failed", func() error {
			return fn(o.value)
		})
	}
	return o
}

// OnFailure invokes fn with a copy of the error list when the outcome did
// not succeed and carries at least one error. Same containment policy as
// OnSuccess: callback errors and panics go to the sink, never to the caller.
func (o Outcome[T]) OnFailure(fn func([]string) error, sink Sink) Outcome[T] {
	if fn != nil && !o.succeeded && len(o.errs) > 0 {
		errs := o.Errors()
		runHook(sink, "failure hook callback failed", func() error {
			return fn(errs)
		})
	}
	return o
}

// runHook contains callback errors and panics at the hook boundary.
func runHook(sink Sink, message string, fn func() error) {
	defer func() {
		if r := recover(); r != nil && sink != nil {
			sink.ReportHookFailure(fmt.Errorf("hook callback panicked: %v", r), message)
		}
	}()

	if err := fn(); err != nil && sink != nil {
		sink.ReportHookFailure(err, message)
	}
}
