// Package kvRepo is the durable key/value medium behind the appointment list
// and the health profile.
package kvRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Store is a string-keyed persistence medium holding UTF-8 JSON values.
type Store interface {
	// Get returns the raw value for key. found is false on first run.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
}

// ErrMalformed reports a stored value that is not valid JSON for the target.
var ErrMalformed = errors.New("stored value is malformed")

// UserKey scopes a storage key to a signed-in user.
func UserKey(uid, key string) string {
	return "users:" + uid + ":" + key
}

// LoadJSON reads key and decodes it into v. A missing key reports
// found=false with a nil error; a value that fails to decode also reports
// found=false and returns an error wrapping ErrMalformed so callers can log it
// without treating it as fatal.
func LoadJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: key %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
