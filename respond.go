package result

import "net/http"

// Response is the HTTP-style descriptor produced by ToResponse.
// The HTTP layer owns serialization and header emission; for Created
// outcomes it builds the Location header from ActionName and RouteValues,
// which this package only carries.
type Response struct {
	// StatusCode is the HTTP status for the response.
	StatusCode int

	// Body is the serializable payload: the raw value, a DataEnvelope, an
	// ErrorEnvelope, a bare []string, or nil.
	Body any

	// ActionName is the routing hint for Location-header construction.
	// Populated only for Created outcomes.
	ActionName string

	// RouteValues are the routing values for Location-header construction.
	// Populated only for Created outcomes.
	RouteValues map[string]any
}

// DataEnvelope wraps a success payload as {"data": value}.
type DataEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps an error list as {"errors": [...]}.
type ErrorEnvelope struct {
	Errors []string `json:"errors"`
}

// ToResponse translates an Outcome into a Response. It is pure, total, and
// deterministic: every category maps to a status and body shape, and any
// combination not matched by the table falls through to the default arm
// (explicit status override or 200, raw value).
//
// Failure and Unauthorized envelope their error lists as {"errors": [...]};
// NotFound, Validation and Conflict return the bare list. The asymmetry is
// observed wire behavior that existing clients depend on; do not unify the
// shapes without a breaking version bump.
func ToResponse[T any](o Outcome[T]) Response {
	switch {
	case o.category == CategorySuccess:
		return Response{
			StatusCode: o.statusOr(http.StatusOK),
			Body:       o.successBody(),
		}

	case o.category == CategoryCreated && o.actionName != "" && o.routeValues != nil:
		return Response{
			StatusCode:  http.StatusCreated,
			Body:        o.body(),
			ActionName:  o.actionName,
			RouteValues: o.RouteValues(),
		}

	case o.category == CategoryNoContent:
		return Response{StatusCode: http.StatusNoContent}

	case o.category == CategoryFailure:
		return Response{
			StatusCode: http.StatusInternalServerError,
			Body:       ErrorEnvelope{Errors: o.Errors()},
		}

	case o.category == CategoryNotFound:
		return Response{
			StatusCode: http.StatusNotFound,
			Body:       o.Errors(),
		}

	case o.category == CategoryValidation:
		if len(o.errs) > 0 {
			return Response{
				StatusCode: http.StatusUnprocessableEntity,
				Body:       o.Errors(),
			}
		}
		// Empty error list falls back to the value. Unreachable through the
		// shipped factories (failure construction never carries a value) but
		// part of the documented contract.
		return Response{
			StatusCode: http.StatusUnprocessableEntity,
			Body:       o.body(),
		}

	case o.category == CategoryConflict:
		return Response{
			StatusCode: http.StatusConflict,
			Body:       o.Errors(),
		}

	case o.category == CategoryUnauthorized:
		return Response{
			StatusCode: http.StatusUnauthorized,
			Body:       ErrorEnvelope{Errors: o.Errors()},
		}

	default:
		// Reached by combinations the table does not match, e.g. a Created
		// outcome missing routing metadata or the zero-value Outcome.
		return Response{
			StatusCode: o.statusOr(http.StatusOK),
			Body:       o.body(),
		}
	}
}

// successBody applies the optional {"data": value} envelope.
func (o Outcome[T]) successBody() any {
	if o.wrapInData {
		return DataEnvelope{Data: o.body()}
	}
	return o.body()
}

// statusOr returns the explicit status override, or fallback when unset.
func (o Outcome[T]) statusOr(fallback int) int {
	if o.statusCode != 0 {
		return o.statusCode
	}
	return fallback
}
