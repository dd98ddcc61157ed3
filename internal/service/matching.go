package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"ridelite/internal/domain"
	"ridelite/internal/store"
)

// MatchState represents the current state of the ride-matching simulation.
type MatchState string

const (
	MatchStateIdle          MatchState = "IDLE"
	MatchStateSearching     MatchState = "SEARCHING"
	MatchStateDriverFound   MatchState = "DRIVER_FOUND"
	MatchStateNoDriver      MatchState = "NO_DRIVER_AVAILABLE"
	MatchStateRideConfirmed MatchState = "RIDE_CONFIRMED"
)

// MatchStatus is a snapshot of the matching state machine.
type MatchStatus struct {
	State       MatchState      `json:"state"`
	Pickup      string          `json:"pickup,omitempty"`
	Destination string          `json:"destination,omitempty"`
	RideType    domain.RideType `json:"rideType"`
	Driver      *domain.Driver  `json:"driver,omitempty"`
}

// MatchingService simulates driver matching: a request enters SEARCHING,
// sleeps the configured delay, then resolves 50/50 to DRIVER_FOUND (with a
// driver drawn uniformly from the fixed roster) or NO_DRIVER_AVAILABLE.
type MatchingService struct {
	store       store.Store
	searchDelay time.Duration
	sim         Sim
	drivers     []domain.Driver

	mu          sync.Mutex
	state       MatchState
	generation  uint64
	pickup      string
	destination string
	rideType    domain.RideType
	distance    string
	duration    string
	driver      *domain.Driver
}

// NewMatchingService creates a MatchingService in the idle state.
func NewMatchingService(st store.Store, searchDelay time.Duration, sim Sim) *MatchingService {
	return &MatchingService{
		store:       st,
		searchDelay: searchDelay,
		sim:         sim,
		drivers:     domain.DriverRoster(),
		state:       MatchStateIdle,
	}
}

// RideRequest contains the parameters for requesting a ride.
type RideRequest struct {
	Pickup      string
	Destination string
	RideTypeID  string
	Distance    string // optional mock string, e.g. "8.5 km"
	Duration    string // optional mock string, e.g. "25 mins"
}

// RequestRide runs one search. The call blocks for the simulated delay; a
// newer request issued while this one sleeps supersedes it, and the
// superseded search discards its outcome (last writer wins).
func (s *MatchingService) RequestRide(ctx context.Context, req RideRequest) (MatchStatus, error) {
	if req.Pickup == "" || req.Destination == "" {
		return s.Status(), ErrMissingLocation
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = MatchStateSearching
	s.pickup = req.Pickup
	s.destination = req.Destination
	s.rideType = domain.RideTypeByID(req.RideTypeID)
	s.distance = req.Distance
	s.duration = req.Duration
	s.driver = nil
	s.mu.Unlock()

	return s.resolveSearch(gen), nil
}

// Retry re-runs the search with the previous pickup and destination.
func (s *MatchingService) Retry(ctx context.Context) (MatchStatus, error) {
	s.mu.Lock()
	if s.state != MatchStateNoDriver {
		s.mu.Unlock()
		return s.snapshotLocked(), ErrNoSearchToRetry
	}
	s.generation++
	gen := s.generation
	s.state = MatchStateSearching
	s.driver = nil
	s.mu.Unlock()

	return s.resolveSearch(gen), nil
}

// resolveSearch sleeps the search delay, draws the outcome, and applies it
// unless the search was superseded in the meantime.
func (s *MatchingService) resolveSearch(gen uint64) MatchStatus {
	s.sim.Sleep(s.searchDelay)

	found := s.sim.Rand.Float64() > 0.5
	var driver *domain.Driver
	if found {
		d := s.drivers[s.sim.Rand.Intn(len(s.drivers))]
		driver = &d
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		// Superseded by a newer request; discard this outcome.
		return s.snapshotLocked()
	}

	if found {
		s.state = MatchStateDriverFound
		s.driver = driver
	} else {
		s.state = MatchStateNoDriver
	}
	return s.snapshotLocked()
}

// Confirm creates the upcoming ride record from the matched driver and
// persists it.
func (s *MatchingService) Confirm(ctx context.Context) (*domain.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != MatchStateDriverFound || s.driver == nil {
		return nil, ErrNoActiveMatch
	}

	now := s.sim.Now()
	ride := &domain.Ride{
		ID:                strconv.FormatInt(now.UnixMilli(), 10),
		Pickup:            s.pickup,
		Destination:       s.destination,
		Driver:            s.driver,
		RideType:          s.rideType,
		Status:            domain.RideStatusUpcoming,
		ScheduledTime:     now.UTC().Format(time.RFC3339),
		EstimatedDuration: s.duration,
		EstimatedDistance: s.distance,
		EstimatedCost:     s.rideType.Price,
	}

	if err := store.SetJSON(ctx, s.store, store.KeyUpcomingRide, ride); err != nil {
		return nil, err
	}

	s.state = MatchStateRideConfirmed
	return ride, nil
}

// Cancel abandons a matched driver and returns to idle. A user cancellation
// is not a failed search, so it does not land on the no-driver state.
func (s *MatchingService) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != MatchStateDriverFound {
		return ErrNoActiveMatch
	}
	s.resetLocked()
	return nil
}

// Dismiss returns the state machine to idle from any state.
func (s *MatchingService) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++ // invalidate any in-flight search
	s.resetLocked()
}

// UpcomingRide returns the persisted upcoming ride, or nil when absent.
func (s *MatchingService) UpcomingRide(ctx context.Context) (*domain.Ride, error) {
	var ride domain.Ride
	ok, err := store.GetJSON(ctx, s.store, store.KeyUpcomingRide, &ride)
	if err != nil || !ok {
		return nil, err
	}
	return &ride, nil
}

// CancelUpcoming deletes the upcoming ride record.
func (s *MatchingService) CancelUpcoming(ctx context.Context) error {
	ride, err := s.UpcomingRide(ctx)
	if err != nil {
		return err
	}
	if ride == nil {
		return ErrNoUpcomingRide
	}

	if err := s.store.Remove(ctx, store.KeyUpcomingRide); err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == MatchStateRideConfirmed {
		s.resetLocked()
	}
	s.mu.Unlock()
	return nil
}

// StagePayment copies the upcoming ride into the pending payment slot for
// the wallet to consume.
func (s *MatchingService) StagePayment(ctx context.Context) (*domain.Ride, error) {
	ride, err := s.UpcomingRide(ctx)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, ErrNoUpcomingRide
	}

	if err := store.SetJSON(ctx, s.store, store.KeyPendingPayment, ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// Status returns a snapshot of the matching state machine.
func (s *MatchingService) Status() MatchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *MatchingService) snapshotLocked() MatchStatus {
	status := MatchStatus{
		State:       s.state,
		Pickup:      s.pickup,
		Destination: s.destination,
		RideType:    s.rideType,
	}
	if s.driver != nil {
		driver := *s.driver
		status.Driver = &driver
	}
	return status
}

func (s *MatchingService) resetLocked() {
	s.state = MatchStateIdle
	s.pickup = ""
	s.destination = ""
	s.distance = ""
	s.duration = ""
	s.driver = nil
}
