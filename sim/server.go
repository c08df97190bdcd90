package sim

import "fmt"

// AdmissionOutcome is the result of offering an arrival to a server.
type AdmissionOutcome int

const (
	// AdmissionRejected: the server is at capacity; the caller records a drop.
	AdmissionRejected AdmissionOutcome = iota
	// AdmissionStartedService: the server was idle; service begins now and
	// the caller schedules the departure with zero wait.
	AdmissionStartedService
	// AdmissionQueued: the server was busy with room in the waiting line;
	// the arrival timestamp was appended to the FIFO wait list.
	AdmissionQueued
)

// Server models one single-server finite-capacity queue. Capacity is the
// waiting-room size plus the one customer in service, fixed at construction.
//
// Invariants, maintained by Admit/Complete:
//   - 0 <= inSystem <= capacity
//   - busy == (inSystem > 0)
//   - len(waiting) == max(0, inSystem-1)
type Server struct {
	capacity int
	rate     float64
	busy     bool
	waiting  []float64
	inSystem int
}

// NewServer creates a server with the given waiting-room size and service
// rate. Total capacity is queueCapacity+1.
func NewServer(queueCapacity int, rate float64) (*Server, error) {
	if queueCapacity < 0 {
		return nil, fmt.Errorf("%w: queue capacity must be >= 0, got %d", ErrInvalidParameter, queueCapacity)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: service rate must be > 0, got %v", ErrInvalidParameter, rate)
	}
	return &Server{
		capacity: queueCapacity + 1,
		rate:     rate,
		waiting:  make([]float64, 0),
	}, nil
}

// Admit offers an arrival at time now to the server and returns the outcome.
// The server itself never draws service times or schedules events; on
// AdmissionStartedService the caller does both.
func (s *Server) Admit(now float64) AdmissionOutcome {
	if s.inSystem == s.capacity {
		return AdmissionRejected
	}
	s.inSystem++
	if !s.busy {
		s.busy = true
		return AdmissionStartedService
	}
	s.waiting = append(s.waiting, now)
	return AdmissionQueued
}

// Complete finishes the in-service customer at time now. If a customer was
// waiting, its arrival timestamp is returned with ok=true and the server
// stays busy serving it; otherwise the server goes idle.
//
// Calling Complete on an empty server is a programming defect: once
// validation passes the event loop is closed, so this panics rather than
// returning an error.
func (s *Server) Complete(now float64) (arrival float64, ok bool) {
	if s.inSystem <= 0 {
		panic(fmt.Sprintf("sim: Complete on server with inSystem=%d at t=%v", s.inSystem, now))
	}
	s.inSystem--
	if len(s.waiting) > 0 {
		arrival = s.waiting[0]
		s.waiting = s.waiting[1:]
		return arrival, true
	}
	s.busy = false
	return 0, false
}

// Busy reports whether a customer is in service.
func (s *Server) Busy() bool { return s.busy }

// InSystem returns the number of customers in service plus waiting.
func (s *Server) InSystem() int { return s.inSystem }

// Capacity returns the total capacity (waiting room + 1 in service).
func (s *Server) Capacity() int { return s.capacity }

// Rate returns the server's exponential service rate.
func (s *Server) Rate() float64 { return s.rate }

// QueueLen returns the number of customers waiting (excludes in service).
func (s *Server) QueueLen() int { return len(s.waiting) }
