// internal/domain/homework/validator.go
package homework

// CheckResponse verifies the decoded payload is an object holding a
// "homeworks" array and returns its items as decoded. Items are not
// inspected here; the slice may be empty.
func CheckResponse(payload any) ([]any, error) {
	body, ok := payload.(map[string]any)
	if !ok {
		return nil, &SchemaError{Kind: ErrTypeMismatch, Actual: payload}
	}

	raw, ok := body[KeyHomeworks]
	if !ok {
		return nil, &SchemaError{Kind: ErrMissingKey, Key: KeyHomeworks}
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, &SchemaError{Kind: ErrTypeMismatch, Key: KeyHomeworks, Actual: raw}
	}
	return items, nil
}
