package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Failure is the classified form of an error body returned by the remote API.
// It is one of FieldFailure, RuleFailure or UnknownFailure.
type Failure interface {
	failure()
}

// FieldFailure reports that one or more input fields failed validation.
// Fields is sorted so that classification does not depend on JSON key order;
// mappers apply their own priority on top of it.
type FieldFailure struct {
	Fields  []string
	Message string
}

// RuleFailure reports a business rule violation identified only by the
// payload message, e.g. "Invalid activity date.".
type RuleFailure struct {
	Message string
}

// UnknownFailure covers everything else: transport errors, malformed bodies
// and bodies that carry neither flagged fields nor a message.
type UnknownFailure struct {
	Status int
	Cause  error
}

func (FieldFailure) failure()   {}
func (RuleFailure) failure()    {}
func (UnknownFailure) failure() {}

// Has reports whether field was flagged in the payload.
func (f FieldFailure) Has(field string) bool {
	for _, name := range f.Fields {
		if name == field {
			return true
		}
	}
	return false
}

// ParseErrorPayload parses an API error body of the shape
//
//	{ "message": string, "errors": { "<field>": bool|string|array|object } }
//
// Both keys are optional. A field counts as flagged when its value is true,
// a non-empty string, a non-empty array or an object. Any other top-level
// shape yields an error wrapping ErrMalformedPayload.
func ParseErrorPayload(body []byte) (Failure, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrMalformedPayload)
	}

	var message string
	if m, ok := raw["message"]; ok {
		if err := json.Unmarshal(m, &message); err != nil {
			return nil, fmt.Errorf("%w: message is not a string", ErrMalformedPayload)
		}
	}

	var fields []string
	if e, ok := raw["errors"]; ok && string(e) != "null" {
		var errs map[string]any
		if err := json.Unmarshal(e, &errs); err != nil {
			return nil, fmt.Errorf("%w: errors is not an object", ErrMalformedPayload)
		}
		for name, v := range errs {
			if flagged(v) {
				fields = append(fields, name)
			}
		}
		sort.Strings(fields)
	}

	switch {
	case len(fields) > 0:
		return FieldFailure{Fields: fields, Message: message}, nil
	case message != "":
		return RuleFailure{Message: message}, nil
	default:
		return UnknownFailure{}, nil
	}
}

// ClassifyFailure turns a non-2xx status and its body into a Failure.
// Bodies ParseErrorPayload rejects become an UnknownFailure carrying the
// parse error, so callers always get a value to map.
func ClassifyFailure(status int, body []byte) Failure {
	f, err := ParseErrorPayload(body)
	if err != nil {
		return UnknownFailure{Status: status, Cause: err}
	}
	if u, ok := f.(UnknownFailure); ok {
		u.Status = status
		return u
	}
	return f
}

// FailureOf extracts the Failure from an error returned by the API client.
// Errors that are not an *APIError (network errors, cancelled requests)
// are reported as UnknownFailure.
func FailureOf(err error) Failure {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Failure != nil {
		return apiErr.Failure
	}
	return UnknownFailure{Cause: err}
}

func flagged(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return true
	case float64:
		return t != 0
	default:
		return false
	}
}
