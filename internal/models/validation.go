package models

// ValidationResult reports the outcome of an entity invariant check. A failed
// check is a value, not an error: the caller rejects the write and shows the
// messages to the user. Messages are Bangla since that is the app language.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func validResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalidResult(errs []string) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}
