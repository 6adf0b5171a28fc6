package result

// Outcome is the immutable terminal result of a business operation.
// It is exactly one of the eight categories and carries either a success
// value or an error list, never both.
//
// Outcomes are constructed only through the package factory functions, which
// enforce the construction invariants. Fields are private to keep constructed
// outcomes consistent; accessors return defensive copies of mutable state, so
// a constructed Outcome can be read freely from multiple goroutines.
type Outcome[T any] struct {
	succeeded bool
	category  Category

	value    T
	hasValue bool
	errs     []string

	// Routing hints, populated only by Created.
	actionName  string
	routeValues map[string]any

	// Success-only presentation options.
	statusCode int // 0 means no override
	wrapInData bool
}

// Succeeded reports whether the outcome represents a successful operation.
func (o Outcome[T]) Succeeded() bool {
	return o.succeeded
}

// Category returns the outcome's category.
func (o Outcome[T]) Category() Category {
	return o.category
}

// Value returns the success value and whether one is present.
// Unsuccessful outcomes never carry a value.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.hasValue
}

// Errors returns a copy of the error messages.
// Returns nil for successful outcomes.
func (o Outcome[T]) Errors() []string {
	if o.errs == nil {
		return nil
	}
	errs := make([]string, len(o.errs))
	copy(errs, o.errs)
	return errs
}

// FirstError returns the first error message, or "" if there are none.
// An unsuccessful outcome may legitimately carry zero errors (list-form
// construction accepts an empty list).
func (o Outcome[T]) FirstError() string {
	if len(o.errs) == 0 {
		return ""
	}
	return o.errs[0]
}

// ActionName returns the routing action hint. Empty unless the outcome was
// built by Created.
func (o Outcome[T]) ActionName() string {
	return o.actionName
}

// RouteValues returns a copy of the routing values attached by Created.
// Returns nil if none were attached.
func (o Outcome[T]) RouteValues() map[string]any {
	if o.routeValues == nil {
		return nil
	}
	rv := make(map[string]any, len(o.routeValues))
	for k, v := range o.routeValues {
		rv[k] = v
	}
	return rv
}

// StatusCode returns the explicit status override and whether one was set.
func (o Outcome[T]) StatusCode() (int, bool) {
	return o.statusCode, o.statusCode != 0
}

// WrapInData reports whether the success payload should be enveloped
// as {"data": value}.
func (o Outcome[T]) WrapInData() bool {
	return o.wrapInData
}

// body returns the raw value for response construction, or nil when the
// outcome carries no value.
func (o Outcome[T]) body() any {
	if !o.hasValue {
		return nil
	}
	return o.value
}
