package result

import "strings"

// Default messages used by the single-message convenience factories when no
// message is supplied.
const (
	DefaultNotFoundMessage     = "Resource not found"
	DefaultUnauthorizedMessage = "Unauthorized"
	DefaultConflictMessage     = "Conflict detected"
)

// Success creates a successful Outcome carrying value. It never fails.
//
// Example:
//
//	out := result.Success(user)
//	out := result.Success(user, result.WithStatus(http.StatusAccepted))
//	out := result.Success(user, result.WrapInData())
func Success[T any](value T, opts ...SuccessOption) Outcome[T] {
	var cfg successConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return Outcome[T]{
		succeeded:  true,
		category:   CategorySuccess,
		value:      value,
		hasValue:   true,
		statusCode: cfg.statusCode,
		wrapInData: cfg.wrapInData,
	}
}

// NoContent creates a successful Outcome with no value. It never fails.
func NoContent[T any]() Outcome[T] {
	return Outcome[T]{
		succeeded: true,
		category:  CategoryNoContent,
	}
}

// Created creates a successful Outcome for a newly created resource.
// actionName and routeValues are both mandatory: the transport layer needs
// them to build the Location header. A blank actionName or nil routeValues
// is rejected with ErrInvalidArgument. An empty (non-nil) routeValues map is
// accepted.
//
// The routeValues map is copied, so later mutation by the caller does not
// affect the outcome.
func Created[T any](value T, actionName string, routeValues map[string]any) (Outcome[T], error) {
	if strings.TrimSpace(actionName) == "" {
		return Outcome[T]{}, invalidArgf("created outcome requires a non-blank action name")
	}
	if routeValues == nil {
		return Outcome[T]{}, invalidArgf("created outcome requires route values")
	}

	rv := make(map[string]any, len(routeValues))
	for k, v := range routeValues {
		rv[k] = v
	}

	return Outcome[T]{
		succeeded:   true,
		category:    CategoryCreated,
		value:       value,
		hasValue:    true,
		actionName:  actionName,
		routeValues: rv,
	}, nil
}

// Failure creates an unsuccessful Outcome from a list of error messages.
// category must be one of the failure categories (Failure, NotFound,
// Validation, Conflict, Unauthorized).
//
// A nil list is rejected with ErrInvalidArgument. An empty list is accepted
// and constructs an unsuccessful outcome with zero errors. Blank strings
// inside the list are accepted; only the single-message form FailureMsg
// validates message content. The two forms are intentionally distinct entry
// points with different validation strength.
//
// The list is copied, so later mutation by the caller does not affect the
// outcome.
func Failure[T any](category Category, errs []string) (Outcome[T], error) {
	if !category.IsFailure() {
		return Outcome[T]{}, invalidArgf("category %q is not a failure category", category)
	}
	if errs == nil {
		return Outcome[T]{}, invalidArgf("errors must not be nil")
	}

	copied := make([]string, len(errs))
	copy(copied, errs)

	return Outcome[T]{
		category: category,
		errs:     copied,
	}, nil
}

// FailureMsg creates an unsuccessful Outcome from a single error message.
// A blank or whitespace-only message is rejected with ErrInvalidArgument.
func FailureMsg[T any](category Category, message string) (Outcome[T], error) {
	if strings.TrimSpace(message) == "" {
		return Outcome[T]{}, invalidArgf("error message must not be blank")
	}
	return Failure[T](category, []string{message})
}

// NotFound creates a NotFound outcome. With no argument the message defaults
// to DefaultNotFoundMessage; an explicitly supplied blank message is rejected.
func NotFound[T any](message ...string) (Outcome[T], error) {
	return FailureMsg[T](CategoryNotFound, pickMessage(message, DefaultNotFoundMessage))
}

// Unauthorized creates an Unauthorized outcome. With no argument the message
// defaults to DefaultUnauthorizedMessage.
func Unauthorized[T any](message ...string) (Outcome[T], error) {
	return FailureMsg[T](CategoryUnauthorized, pickMessage(message, DefaultUnauthorizedMessage))
}

// Conflict creates a Conflict outcome. With no argument the message defaults
// to DefaultConflictMessage.
func Conflict[T any](message ...string) (Outcome[T], error) {
	return FailureMsg[T](CategoryConflict, pickMessage(message, DefaultConflictMessage))
}

// ValidationError creates a Validation outcome from a list of messages.
// Same list semantics as Failure: nil rejected, empty accepted.
func ValidationError[T any](errs []string) (Outcome[T], error) {
	return Failure[T](CategoryValidation, errs)
}

func pickMessage(message []string, fallback string) string {
	if len(message) > 0 {
		return message[0]
	}
	return fallback
}
