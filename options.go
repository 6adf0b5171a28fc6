package result

// successConfig collects the optional parameters of Success.
type successConfig struct {
	statusCode int
	wrapInData bool
}

// SuccessOption customizes a successful Outcome.
type SuccessOption func(*successConfig)

// WithStatus overrides the 200 status the responder would otherwise use.
// A zero code leaves the default in place.
func WithStatus(code int) SuccessOption {
	return func(c *successConfig) {
		c.statusCode = code
	}
}

// WrapInData envelopes the success payload as {"data": value} instead of
// returning the raw value.
func WrapInData() SuccessOption {
	return func(c *successConfig) {
		c.wrapInData = true
	}
}
