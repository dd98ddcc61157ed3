package tests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ridelite/internal/domain"
	"ridelite/internal/service"
	"ridelite/internal/store"
)

func stagePendingRide(t *testing.T, st store.Store, cost string) *domain.Ride {
	t.Helper()
	ctx := context.Background()

	driver := domain.DriverRoster()[1]
	ride := &domain.Ride{
		ID:            "1742000000000",
		Pickup:        "Central Park",
		Destination:   "JFK Airport",
		Driver:        &driver,
		RideType:      domain.RideTypeByID("premium"),
		Status:        domain.RideStatusUpcoming,
		EstimatedCost: cost,
	}
	if err := store.SetJSON(ctx, st, store.KeyUpcomingRide, ride); err != nil {
		t.Fatalf("failed to seed upcoming ride: %v", err)
	}
	if err := store.SetJSON(ctx, st, store.KeyPendingPayment, ride); err != nil {
		t.Fatalf("failed to seed pending payment: %v", err)
	}
	return ride
}

func TestConfirmPayment_DebitsAndRecordsTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()
	wallet := service.NewWalletService(st, 0, testSim(&ScriptRand{}))

	// Start from an explicit empty history so exactly one record appears.
	if err := store.SetJSON(ctx, st, store.KeyRecentTrips, []domain.Trip{}); err != nil {
		t.Fatalf("failed to seed history: %v", err)
	}
	stagePendingRide(t, st, "BDT 350")

	if err := wallet.SelectMethod(domain.PaymentMethodBkash); err != nil {
		t.Fatalf("select method failed: %v", err)
	}

	result, err := wallet.ConfirmPayment(ctx)
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	// B - C against the default balance.
	if result.NewBalance != domain.DefaultWalletBalance-350 {
		t.Errorf("expected balance %v, got %v", domain.DefaultWalletBalance-350, result.NewBalance)
	}
	balance, err := wallet.Balance(ctx)
	if err != nil || balance != result.NewBalance {
		t.Errorf("persisted balance mismatch: %v err=%v", balance, err)
	}

	trips, err := wallet.TripHistory(ctx)
	if err != nil {
		t.Fatalf("trip history failed: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("expected exactly one trip, got %d", len(trips))
	}
	trip := trips[0]
	if trip.Status != domain.RideStatusCompleted {
		t.Errorf("expected Completed trip, got %s", trip.Status)
	}
	if trip.Amount != "BDT 350" {
		t.Errorf("unexpected amount: %s", trip.Amount)
	}
	if trip.Date != "Mar 14" || trip.Time != "3:04 PM" {
		t.Errorf("unexpected timestamp: %s %s", trip.Date, trip.Time)
	}
	if trip.Driver.Name != "Sarah Johnson" || trip.Driver.Plate != "XYZ-789" {
		t.Errorf("unexpected driver on receipt: %+v", trip.Driver)
	}
	// No mock strings supplied; fallbacks apply.
	if trip.Distance != "8.5 km" || trip.Duration != "25 mins" {
		t.Errorf("expected fallback distance/duration, got %s / %s", trip.Distance, trip.Duration)
	}

	// Both staging keys are cleared.
	if _, ok, _ := st.Get(ctx, store.KeyPendingPayment); ok {
		t.Error("expected pending payment removed")
	}
	if _, ok, _ := st.Get(ctx, store.KeyUpcomingRide); ok {
		t.Error("expected upcoming ride removed")
	}
}

func TestConfirmPayment_PrependsToExistingHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()
	wallet := service.NewWalletService(st, 0, testSim(&ScriptRand{}))

	stagePendingRide(t, st, "BDT 250")
	if err := wallet.SelectMethod(domain.PaymentMethodCash); err != nil {
		t.Fatalf("select method failed: %v", err)
	}

	// With nothing stored, history starts from the three seed fixtures.
	result, err := wallet.ConfirmPayment(ctx)
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	trips, err := wallet.TripHistory(ctx)
	if err != nil {
		t.Fatalf("trip history failed: %v", err)
	}
	if len(trips) != len(domain.SeedTrips())+1 {
		t.Fatalf("expected seed history plus one, got %d", len(trips))
	}
	if trips[0].ID != result.Trip.ID {
		t.Error("new trip must be prepended to the front")
	}
}

func TestConfirmPayment_ConcurrentCallsSettleOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()

	// Both callers reach the processing sleep before either takes the
	// settlement lock, so the second must find the pending payment gone.
	var barrier sync.WaitGroup
	barrier.Add(2)
	sim := service.Sim{
		Sleep: func(time.Duration) {
			barrier.Done()
			barrier.Wait()
		},
		Now:  func() time.Time { return fixedNow },
		Rand: &ScriptRand{},
	}
	wallet := service.NewWalletService(st, time.Millisecond, sim)

	if err := store.SetJSON(ctx, st, store.KeyRecentTrips, []domain.Trip{}); err != nil {
		t.Fatalf("failed to seed history: %v", err)
	}
	stagePendingRide(t, st, "BDT 350")
	if err := wallet.SelectMethod(domain.PaymentMethodCard); err != nil {
		t.Fatalf("select method failed: %v", err)
	}

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := wallet.ConfirmPayment(ctx)
			results <- err
		}()
	}

	var successes, misses int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			successes++
		case errors.Is(err, service.ErrNoPendingPayment):
			misses++
		default:
			t.Fatalf("unexpected settlement error: %v", err)
		}
	}
	if successes != 1 || misses != 1 {
		t.Fatalf("expected exactly one settlement, got %d successes and %d misses", successes, misses)
	}

	balance, err := wallet.Balance(ctx)
	if err != nil || balance != domain.DefaultWalletBalance-350 {
		t.Errorf("ride must be debited exactly once, got balance %v err=%v", balance, err)
	}
	trips, err := wallet.TripHistory(ctx)
	if err != nil || len(trips) != 1 {
		t.Errorf("expected a single receipt, got %d err=%v", len(trips), err)
	}
}

func TestTopUp_ConcurrentCreditsAllApply(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wallet := service.NewWalletService(store.NewMemoryStore(), 0, testSim(&ScriptRand{}))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := wallet.TopUp(ctx, 100); err != nil {
				t.Errorf("top-up failed: %v", err)
			}
		}()
	}
	wg.Wait()

	balance, err := wallet.Balance(ctx)
	if err != nil || balance != domain.DefaultWalletBalance+400 {
		t.Errorf("expected every credit applied, got %v err=%v", balance, err)
	}
}

func TestConfirmPayment_RequiresMethod(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()
	wallet := service.NewWalletService(st, 0, testSim(&ScriptRand{}))
	stagePendingRide(t, st, "BDT 250")

	_, err := wallet.ConfirmPayment(ctx)
	if !errors.Is(err, service.ErrNoPaymentMethod) {
		t.Fatalf("expected ErrNoPaymentMethod, got %v", err)
	}
	if _, ok, _ := st.Get(ctx, store.KeyPendingPayment); !ok {
		t.Error("rejected payment must leave the pending payment staged")
	}
}

func TestConfirmPayment_RequiresPendingPayment(t *testing.T) {
	t.Parallel()

	wallet := service.NewWalletService(store.NewMemoryStore(), 0, testSim(&ScriptRand{}))
	if err := wallet.SelectMethod(domain.PaymentMethodCard); err != nil {
		t.Fatalf("select method failed: %v", err)
	}

	_, err := wallet.ConfirmPayment(context.Background())
	if !errors.Is(err, service.ErrNoPendingPayment) {
		t.Fatalf("expected ErrNoPendingPayment, got %v", err)
	}
}

func TestConfirmPayment_InsufficientFunds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()
	wallet := service.NewWalletService(st, 0, testSim(&ScriptRand{}))

	if err := st.Set(ctx, store.KeyWalletBalance, []byte("100")); err != nil {
		t.Fatalf("failed to seed balance: %v", err)
	}
	stagePendingRide(t, st, "BDT 250")
	if err := wallet.SelectMethod(domain.PaymentMethodCard); err != nil {
		t.Fatalf("select method failed: %v", err)
	}

	_, err := wallet.ConfirmPayment(ctx)
	if !errors.Is(err, service.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// Nothing is mutated on a rejected payment.
	balance, _ := wallet.Balance(ctx)
	if balance != 100 {
		t.Errorf("balance must be unchanged, got %v", balance)
	}
	if _, ok, _ := st.Get(ctx, store.KeyPendingPayment); !ok {
		t.Error("pending payment must survive a rejected payment")
	}
	if _, ok, _ := st.Get(ctx, store.KeyUpcomingRide); !ok {
		t.Error("upcoming ride must survive a rejected payment")
	}
}

func TestSelectMethod_RejectsUnknownMethod(t *testing.T) {
	t.Parallel()

	wallet := service.NewWalletService(store.NewMemoryStore(), 0, testSim(&ScriptRand{}))
	if err := wallet.SelectMethod("paypal"); !errors.Is(err, service.ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestBalance_DefaultsWhenAbsentOrCorrupted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()
	wallet := service.NewWalletService(st, 0, testSim(&ScriptRand{}))

	balance, err := wallet.Balance(ctx)
	if err != nil || balance != domain.DefaultWalletBalance {
		t.Errorf("expected default balance, got %v err=%v", balance, err)
	}

	if err := st.Set(ctx, store.KeyWalletBalance, []byte("not-a-number")); err != nil {
		t.Fatalf("failed to corrupt balance: %v", err)
	}
	balance, err = wallet.Balance(ctx)
	if err != nil || balance != domain.DefaultWalletBalance {
		t.Errorf("corrupted balance must read as default, got %v err=%v", balance, err)
	}
}

func TestTopUp_CreditsBalance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wallet := service.NewWalletService(store.NewMemoryStore(), 0, testSim(&ScriptRand{}))

	if _, err := wallet.TopUp(ctx, -50); !errors.Is(err, service.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	balance, err := wallet.TopUp(ctx, 500)
	if err != nil {
		t.Fatalf("top-up failed: %v", err)
	}
	if balance != domain.DefaultWalletBalance+500 {
		t.Errorf("expected %v, got %v", domain.DefaultWalletBalance+500, balance)
	}

	persisted, _ := wallet.Balance(ctx)
	if persisted != balance {
		t.Errorf("top-up must persist, got %v", persisted)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"BDT 250", 250, false},
		{"BDT 350", 350, false},
		{" BDT 500 ", 500, false},
		{"420.50", 420.50, false},
		{"BDT", 0, true},
		{"free", 0, true},
	}

	for _, tc := range cases {
		got, err := service.ParseAmount(tc.in)
		if tc.wantErr {
			if !errors.Is(err, service.ErrMalformedAmount) {
				t.Errorf("ParseAmount(%q): expected ErrMalformedAmount, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestTripHistory_SeedFallback(t *testing.T) {
	t.Parallel()

	wallet := service.NewWalletService(store.NewMemoryStore(), 0, testSim(&ScriptRand{}))

	trips, err := wallet.TripHistory(context.Background())
	if err != nil {
		t.Fatalf("trip history failed: %v", err)
	}
	seed := domain.SeedTrips()
	if len(trips) != len(seed) {
		t.Fatalf("expected %d seed trips, got %d", len(seed), len(trips))
	}
	if trips[0].Driver.Name != "Rahim Ali" {
		t.Errorf("unexpected first seed trip: %+v", trips[0])
	}
}
