package sim

// EventKind identifies the two event types the simulation dispatches.
// The numeric value doubles as the dispatch rank on an exact time tie:
// arrivals are processed before departures.
type EventKind int

const (
	KindArrival EventKind = iota
	KindDeparture
)

func (k EventKind) String() string {
	switch k {
	case KindArrival:
		return "arrival"
	case KindDeparture:
		return "departure"
	default:
		return "unknown"
	}
}

// Event defines the interface for all simulation events. Each event carries
// the simulated time at which it fires and advances simulation state when
// Execute is invoked. Events are immutable once scheduled and are discarded
// after dispatch.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	Execute(*Simulator)
}

// ArrivalEvent represents a customer entering the system. The target server
// is not chosen until dispatch: routing is a property of the arrival's
// processing, not of its scheduling.
type ArrivalEvent struct {
	time float64
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }

func (e *ArrivalEvent) Kind() EventKind { return KindArrival }

func (e *ArrivalEvent) Execute(sim *Simulator) {
	sim.handleArrival(e)
}

// DepartureEvent represents a customer completing service at a server and
// leaving the system. It carries the index of the serving server and the
// customer's original arrival timestamp.
type DepartureEvent struct {
	time        float64
	serverIndex int
	arrivalTime float64
}

func (e *DepartureEvent) Timestamp() float64 { return e.time }

func (e *DepartureEvent) Kind() EventKind { return KindDeparture }

func (e *DepartureEvent) Execute(sim *Simulator) {
	sim.handleDeparture(e)
}
