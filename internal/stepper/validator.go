package stepper

import "strings"

// ResultKind is the outcome of validating a step.
type ResultKind int

const (
	// Invalid keeps the step open and shows an error.
	Invalid ResultKind = iota
	// ValidIncomplete advances without marking the step complete.
	ValidIncomplete
	// ValidComplete marks the step complete and advances.
	ValidComplete
)

// String returns the string representation of a result kind
func (k ResultKind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case ValidIncomplete:
		return "valid-incomplete"
	default:
		return "valid-complete"
	}
}

// Result is returned by a Validator.
type Result struct {
	kind    ResultKind
	message string
}

// InvalidResult returns an Invalid result carrying msg.
func InvalidResult(msg string) Result {
	return Result{kind: Invalid, message: msg}
}

var (
	// ValidIncompleteResult lets an optional step be skipped.
	ValidIncompleteResult = Result{kind: ValidIncomplete}
	// ValidCompleteResult marks a step complete.
	ValidCompleteResult = Result{kind: ValidComplete}
)

func (r Result) Kind() ResultKind { return r.kind }

// Message returns the error message of an Invalid result.
func (r Result) Message() string { return r.message }

// IsValid reports whether the step may advance.
func (r Result) IsValid() bool { return r.kind != Invalid }

// Validator decides whether a step may advance when its continue control is
// used. It must not modify the content widget.
type Validator interface {
	Validate(content Widget, optional bool) Result
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(content Widget, optional bool) Result

// Validate calls f.
func (f ValidatorFunc) Validate(content Widget, optional bool) Result {
	return f(content, optional)
}

// AlwaysValid is the default validator.
type AlwaysValid struct{}

// Validate always returns ValidCompleteResult.
func (AlwaysValid) Validate(Widget, bool) Result {
	return ValidCompleteResult
}

// RequireValue validates content that implements Valuer: empty values are
// Invalid with msg on required steps and ValidIncomplete on optional ones.
// Content without a value is always complete.
func RequireValue(msg string) Validator {
	return ValidatorFunc(func(content Widget, optional bool) Result {
		v, ok := content.(Valuer)
		if !ok {
			return ValidCompleteResult
		}
		if strings.TrimSpace(v.Value()) != "" {
			return ValidCompleteResult
		}
		if optional {
			return ValidIncompleteResult
		}
		return InvalidResult(msg)
	})
}

// Chain runs validators in order and returns the first non-complete result.
func Chain(validators ...Validator) Validator {
	return ValidatorFunc(func(content Widget, optional bool) Result {
		for _, v := range validators {
			if r := v.Validate(content, optional); r.kind != ValidComplete {
				return r
			}
		}
		return ValidCompleteResult
	})
}
