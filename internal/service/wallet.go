package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ridelite/internal/domain"
	"ridelite/internal/store"
)

// Trip history fallbacks when the pending payment carries no mock strings.
const (
	fallbackDistance = "8.5 km"
	fallbackDuration = "25 mins"
)

// WalletService maintains the persisted balance, consumes pending payments,
// and appends receipts to the trip history. The selected payment method is
// in-memory only.
type WalletService struct {
	store        store.Store
	processDelay time.Duration
	sim          Sim

	mu     sync.Mutex
	method domain.PaymentMethod
}

// NewWalletService creates a WalletService.
func NewWalletService(st store.Store, processDelay time.Duration, sim Sim) *WalletService {
	return &WalletService{
		store:        st,
		processDelay: processDelay,
		sim:          sim,
	}
}

// Balance returns the persisted balance, or the default for a fresh wallet.
// The balance is stored as a bare decimal string.
func (s *WalletService) Balance(ctx context.Context) (float64, error) {
	data, ok, err := s.store.Get(ctx, store.KeyWalletBalance)
	if err != nil {
		return 0, err
	}
	if !ok {
		return domain.DefaultWalletBalance, nil
	}
	balance, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		// Corrupted value behaves like an absent one.
		return domain.DefaultWalletBalance, nil
	}
	return balance, nil
}

// SelectMethod records the payment method for the next confirmation.
func (s *WalletService) SelectMethod(method domain.PaymentMethod) error {
	if !domain.ValidPaymentMethod(method) {
		return ErrInvalidPaymentMethod
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.method = method
	return nil
}

// Method returns the currently selected payment method, if any.
func (s *WalletService) Method() domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// PendingPayment returns the staged ride awaiting payment, or nil.
func (s *WalletService) PendingPayment(ctx context.Context) (*domain.Ride, error) {
	var ride domain.Ride
	ok, err := store.GetJSON(ctx, s.store, store.KeyPendingPayment, &ride)
	if err != nil || !ok {
		return nil, err
	}
	return &ride, nil
}

// PaymentResult is the outcome of a confirmed payment.
type PaymentResult struct {
	Trip       domain.Trip
	NewBalance float64
}

// ConfirmPayment settles the pending payment: debits the balance, prepends a
// completed trip to the history, and clears both the pending payment and the
// upcoming ride. The lock covers the whole read-check-write sequence, so a
// pending ride settles at most once; all reads and parsing happen before the
// first write, so a rejected payment leaves every key untouched.
func (s *WalletService) ConfirmPayment(ctx context.Context) (*PaymentResult, error) {
	// Simulated processing latency; the lock is not held while sleeping.
	s.sim.Sleep(s.processDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.method == "" {
		return nil, ErrNoPaymentMethod
	}

	pending, err := s.PendingPayment(ctx)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrNoPendingPayment
	}

	cost, err := ParseAmount(pending.EstimatedCost)
	if err != nil {
		return nil, err
	}

	balance, err := s.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if cost > balance {
		return nil, ErrInsufficientFunds
	}

	trips, err := s.TripHistory(ctx)
	if err != nil {
		return nil, err
	}

	now := s.sim.Now()
	trip := domain.Trip{
		ID:       uuid.New().String(),
		Date:     now.Format("Jan 2"),
		Time:     now.Format("3:04 PM"),
		Status:   domain.RideStatusCompleted,
		Pickup:   pending.Pickup,
		Dropoff:  pending.Destination,
		Amount:   pending.EstimatedCost,
		Distance: orFallback(pending.EstimatedDistance, fallbackDistance),
		Duration: orFallback(pending.EstimatedDuration, fallbackDuration),
	}
	if pending.Driver != nil {
		trip.Driver = domain.TripDriver{
			Name:   pending.Driver.Name,
			Rating: pending.Driver.Rating,
			Car:    pending.Driver.CarModel,
			Plate:  pending.Driver.LicensePlate,
		}
	}

	newBalance := balance - cost
	if err := s.setBalance(ctx, newBalance); err != nil {
		return nil, err
	}

	updated := append([]domain.Trip{trip}, trips...)
	if err := store.SetJSON(ctx, s.store, store.KeyRecentTrips, updated); err != nil {
		return nil, err
	}

	if err := s.store.Remove(ctx, store.KeyPendingPayment); err != nil {
		return nil, err
	}
	if err := s.store.Remove(ctx, store.KeyUpcomingRide); err != nil {
		return nil, err
	}

	return &PaymentResult{Trip: trip, NewBalance: newBalance}, nil
}

// TopUp credits the balance and persists it.
func (s *WalletService) TopUp(ctx context.Context, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	// The read-credit-write sequence shares the settlement lock.
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.Balance(ctx)
	if err != nil {
		return 0, err
	}

	newBalance := balance + amount
	if err := s.setBalance(ctx, newBalance); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// TripHistory returns the persisted trip list, falling back to the seed
// fixtures when nothing has been stored yet.
func (s *WalletService) TripHistory(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	ok, err := store.GetJSON(ctx, s.store, store.KeyRecentTrips, &trips)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.SeedTrips(), nil
	}
	return trips, nil
}

func (s *WalletService) setBalance(ctx context.Context, balance float64) error {
	value := strconv.FormatFloat(balance, 'f', -1, 64)
	return s.store.Set(ctx, store.KeyWalletBalance, []byte(value))
}

// ParseAmount extracts the numeric cost from a "BDT 250" style string.
func ParseAmount(amount string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(amount), "BDT"))
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, ErrMalformedAmount
	}
	return value, nil
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
