package store

import (
	"context"
	"reflect"
	"testing"
)

type record struct {
	ID     string            `json:"id"`
	Labels []string          `json:"labels"`
	Extra  map[string]string `json:"extra"`
}

func TestRoundTrip_StructurallyEqual(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := NewMemoryStore()

	in := record{
		ID:     "1742000000000",
		Labels: []string{"upcoming", "premium"},
		Extra:  map[string]string{"pickup": "Central Park", "destination": "JFK Airport"},
	}
	if err := SetJSON(ctx, st, KeyUpcomingRide, in); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var out record
	ok, err := GetJSON(ctx, st, KeyUpcomingRide, &out)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round-trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestGetJSON_MissingKeyReportsAbsent(t *testing.T) {
	t.Parallel()

	var out record
	ok, err := GetJSON(context.Background(), NewMemoryStore(), KeyPendingPayment, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("missing key must report absent")
	}
}

func TestGetJSON_MalformedValueTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := NewMemoryStore()
	if err := st.Set(ctx, KeyUser, []byte("{not json")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var out record
	ok, err := GetJSON(ctx, st, KeyUser, &out)
	if err != nil {
		t.Fatalf("malformed value must not surface an error, got %v", err)
	}
	if ok {
		t.Error("malformed value must read as absent")
	}
}

func TestRemove_AbsentKeyIsNotAnError(t *testing.T) {
	t.Parallel()

	if err := NewMemoryStore().Remove(context.Background(), KeyRecentTrips); err != nil {
		t.Fatalf("removing an absent key failed: %v", err)
	}
}

func TestMemoryStore_CopiesOnReadAndWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := NewMemoryStore()

	value := []byte(`"abc"`)
	if err := st.Set(ctx, KeyWalletBalance, value); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value[1] = 'x' // caller mutation must not leak into the store

	got, ok, err := st.Get(ctx, KeyWalletBalance)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if string(got) != `"abc"` {
		t.Errorf("stored value was mutated: %s", got)
	}

	got[1] = 'y'
	again, _, _ := st.Get(ctx, KeyWalletBalance)
	if string(again) != `"abc"` {
		t.Errorf("returned value aliases the store: %s", again)
	}
}
