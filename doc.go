// Package result provides a discriminated operation-outcome type and its
// translation to HTTP-style responses.
//
// The package decouples business logic from web-framework response
// construction: application code decides whether an operation succeeded and
// with what semantic category of failure, while the delivery layer only
// serializes the descriptor that ToResponse produces.
//
// # Features
//
//   - Closed set of eight outcome categories (success and failure families)
//   - Immutable generic Outcome[T] constructed only through checked factories
//   - Mutually exclusive success value and error list, enforced at construction
//   - Total, deterministic translation to a status code and body shape
//   - Pass-through observation hooks that contain observer failures
//   - Zero dependencies (Layer 0 library)
//
// # Design Principles
//
//   - Immutability (outcomes are immutable once created)
//   - Type safety (strong types for categories, generic success values)
//   - Construction-time rejection of invalid inputs, never silent coercion
//   - Domain failures are values, not errors: an Outcome in a failure
//     category is a successfully constructed result returned through the
//     normal path
//
// # Quick Start
//
// Creating outcomes:
//
//	// Plain success
//	out := result.Success(user)
//
//	// Success with presentation options
//	out := result.Success(user, result.WithStatus(http.StatusAccepted), result.WrapInData())
//
//	// Created resource with routing metadata
//	out, err := result.Created(user, "GetUser", map[string]any{"id": user.ID})
//
//	// Categorized failures
//	out, err := result.NotFound[User]()
//	out, err := result.ValidationError[User]([]string{"name is required"})
//	out, err := result.FailureMsg[User](result.CategoryFailure, "billing backend unreachable")
//
// Observing without altering:
//
//	out = out.
//	    OnSuccess(func(u User) error { return audit.RecordLogin(u) }, sink).
//	    OnFailure(func(errs []string) error { return audit.RecordDenial(errs) }, sink)
//
// Translating for the HTTP layer:
//
//	resp := result.ToResponse(out)
//	w.WriteHeader(resp.StatusCode)
//	if resp.Body != nil {
//	    _ = json.NewEncoder(w).Encode(resp.Body)
//	}
//
// # Construction Invariants
//
// Factories reject invalid inputs synchronously with an error wrapping
// ErrInvalidArgument:
//
//   - Created requires a non-blank action name and non-nil route values
//   - FailureMsg rejects a blank or whitespace-only message
//   - Failure rejects a nil error list (an empty list is accepted and
//     constructs an unsuccessful outcome with zero errors)
//
// The list and single-message failure forms deliberately validate with
// different strength: the list form accepts blank strings inside the list.
// They are distinct entry points, not variants of one validated path.
//
// # Translation Table
//
// ToResponse maps category and optional fields to a response, first match
// wins:
//
//   - Success: override status or 200; raw value, or {"data": value} when
//     the WrapInData option was used
//   - Created (with routing metadata): 201; value plus ActionName and
//     RouteValues for Location-header construction
//   - NoContent: 204, empty body
//   - Failure: 500, {"errors": [...]}
//   - NotFound: 404, bare error list
//   - Validation: 422, bare error list, or the value when the list is empty
//   - Conflict: 409, bare error list
//   - Unauthorized: 401, {"errors": [...]}
//   - anything else: override status or 200, raw value
//
// Failure and Unauthorized envelope their error lists while NotFound and
// Conflict return the bare collection. The asymmetry is deliberate wire
// behavior: some clients expect a fixed error-object shape, others consume
// the plain list.
//
// # Hooks and Sinks
//
// OnSuccess and OnFailure are pass-through combinators: they invoke the
// callback when the outcome matches, then return the outcome unchanged.
// Callback errors and panics are contained at the hook boundary and reported
// to the optional Sink; a nil Sink discards them. The main pipeline can
// never be faulted by an observer.
//
// # Concurrency
//
// All operations are synchronous in-memory computations. An Outcome is never
// mutated after construction and may be read concurrently. Hook callbacks
// run on the caller's goroutine; serializing access to a shared mutable
// callback or sink is the caller's responsibility.
package result
