package services

// Custom errors
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// ModelError reports that the generative model call itself failed (timeout,
// transport error, empty output). Unparseable-but-present output is not an
// error; the coercer degrades it instead.
type ModelError struct {
	Err error
	// Language is the session language at the time of the failure, so the
	// apology shown to the user stays in their script.
	Language string
}

func (e *ModelError) Error() string { return "model call failed: " + e.Err.Error() }

func (e *ModelError) Unwrap() error { return e.Err }
