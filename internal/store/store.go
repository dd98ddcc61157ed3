package store

import (
	"context"
	"encoding/json"
)

// Persisted key layout. Every value is a JSON-encoded document; walletBalance
// is a bare decimal string.
const (
	KeyUser           = "user"
	KeyMockUsers      = "mockUsers"
	KeyUpcomingRide   = "upcomingRide"
	KeyRecentTrips    = "recentTrips"
	KeyWalletBalance  = "walletBalance"
	KeyPendingPayment = "pendingPayment"
)

// Store is a flat key-value store for JSON-serialized records. There is no
// transactionality and no atomicity across keys; writers follow a
// last-write-wins discipline.
type Store interface {
	// Get retrieves the raw value for key. The bool reports presence.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set writes the raw value for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the value for key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// GetJSON reads key and unmarshals it into out. A missing key returns
// (false, nil). Malformed stored JSON is treated as absent rather than
// surfaced, so a corrupted record behaves like a cleared one.
func GetJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
