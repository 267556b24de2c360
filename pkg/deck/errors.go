package deck

import "fmt"

// ValidationError represents a single deck field that failed validation.
type ValidationError struct {
	Field  string // dotted path into the deck, e.g. "wells[0].type"
	Reason string // human-readable reason for failure
	Value  any    // the offending value, if informative
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Field, e.Reason, e.Value)
}

// AggregateError collects every validation failure in one pass so deck
// authors see all problems at once.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns the individual failures if err is an
// AggregateError, nil otherwise.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
