// internal/domain/homework/status.go
package homework

import "fmt"

// ParseStatus builds the chat message for a single decoded review item.
// The name is printed as is; only the status must be a string.
func ParseStatus(item any) (string, error) {
	rec, ok := item.(map[string]any)
	if !ok {
		return "", &SchemaError{Kind: ErrTypeMismatch, Key: KeyHomeworks, Actual: item}
	}

	name, ok := rec[KeyName]
	if !ok {
		return "", &SchemaError{Kind: ErrMissingKey, Key: KeyName}
	}
	raw, ok := rec[KeyStatus]
	if !ok {
		return "", &SchemaError{Kind: ErrMissingKey, Key: KeyStatus}
	}
	code, ok := raw.(string)
	if !ok {
		return "", &SchemaError{Kind: ErrTypeMismatch, Key: KeyStatus, Actual: raw}
	}

	verdict, ok := Verdicts[Status(code)]
	if !ok {
		return "", &UnknownVerdictError{Status: code}
	}
	return fmt.Sprintf("Changed review status for \"%v\". %s", name, verdict), nil
}
