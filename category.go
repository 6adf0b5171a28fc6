// Package result provides a discriminated operation-outcome type.
// It gives application logic a single vocabulary for reporting success or
// categorized failure, and a deterministic translation from that vocabulary
// to HTTP-style responses.
package result

// Category identifies the semantic class of a completed operation.
// Categories are string-based for debuggability and natural JSON serialization.
type Category string

const (
	// Success categories.

	// CategorySuccess indicates the operation completed and produced a value.
	CategorySuccess Category = "SUCCESS"

	// CategoryCreated indicates a resource was created; the outcome carries
	// routing metadata for Location-header construction.
	CategoryCreated Category = "CREATED"

	// CategoryNoContent indicates the operation completed with nothing to return.
	CategoryNoContent Category = "NO_CONTENT"

	// Failure categories.

	// CategoryFailure indicates a general, uncategorized failure.
	CategoryFailure Category = "FAILURE"

	// CategoryNotFound indicates a requested resource does not exist.
	CategoryNotFound Category = "NOT_FOUND"

	// CategoryValidation indicates the operation's input failed validation.
	CategoryValidation Category = "VALIDATION"

	// CategoryConflict indicates a resource state conflict prevented the operation.
	CategoryConflict Category = "CONFLICT"

	// CategoryUnauthorized indicates the request lacked valid credentials.
	CategoryUnauthorized Category = "UNAUTHORIZED"
)

// categorySucceeds partitions the closed category set into the success and
// failure families. Presence in the map doubles as category validity.
var categorySucceeds = map[Category]bool{
	CategorySuccess:   true,
	CategoryCreated:   true,
	CategoryNoContent: true,

	CategoryFailure:      false,
	CategoryNotFound:     false,
	CategoryValidation:   false,
	CategoryConflict:     false,
	CategoryUnauthorized: false,
}

// Valid reports whether c is one of the eight defined categories.
func (c Category) Valid() bool {
	_, ok := categorySucceeds[c]
	return ok
}

// IsSuccess reports whether c belongs to the success family
// (Success, Created, NoContent).
func (c Category) IsSuccess() bool {
	return categorySucceeds[c]
}

// IsFailure reports whether c belongs to the failure family
// (Failure, NotFound, Validation, Conflict, Unauthorized).
func (c Category) IsFailure() bool {
	succeeds, ok := categorySucceeds[c]
	return ok && !succeeds
}

// Categories returns all defined categories in declaration order.
func Categories() []Category {
	return []Category{
		CategorySuccess,
		CategoryCreated,
		CategoryNoContent,
		CategoryFailure,
		CategoryNotFound,
		CategoryValidation,
		CategoryConflict,
		CategoryUnauthorized,
	}
}
