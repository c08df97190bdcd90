package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, system state and
// the event loop. It is strictly single-threaded: all state is owned by the
// instance and mutated only from Run.
type Simulator struct {
	Clock   float64
	Horizon float64

	events   *EventHeap
	servers  []*Server
	router   *Router
	variates *VariateSource
	policy   HorizonPolicy

	arrivalRate float64

	// Metrics accumulates served/dropped counts and cumulative times; both
	// event handlers update it.
	Metrics *Metrics

	trace *TraceRecorder
}

// NewSimulator validates the configuration and builds a ready-to-run
// simulation instance. Validation failures return before any state is
// created; there is no partial result.
func NewSimulator(cfg SimulationConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	servers := make([]*Server, cfg.NumServers())
	for i := range servers {
		srv, err := NewServer(cfg.QueueCapacities[i], cfg.ServiceRates[i])
		if err != nil {
			return nil, err
		}
		servers[i] = srv
	}

	router, err := NewRouter(cfg.RoutingProbabilities)
	if err != nil {
		return nil, err
	}

	policy, err := NewHorizonPolicy(cfg.HorizonMode)
	if err != nil {
		return nil, err
	}

	var variates *VariateSource
	if cfg.Seed != nil {
		variates = NewVariateSource(*cfg.Seed)
	} else {
		variates = NewEntropyVariateSource()
	}

	return &Simulator{
		Horizon:     cfg.Horizon,
		events:      NewEventHeap(),
		servers:     servers,
		router:      router,
		variates:    variates,
		policy:      policy,
		arrivalRate: cfg.ArrivalRate,
		Metrics:     NewMetrics(cfg.NumServers()),
	}, nil
}

// SetTrace attaches an optional per-event trace recorder. Must be called
// before Run.
func (sim *Simulator) SetTrace(tr *TraceRecorder) {
	sim.trace = tr
}

// Schedule pushes an event into the simulator's event heap.
func (sim *Simulator) Schedule(ev Event) {
	sim.events.Schedule(ev)
}

// Run executes the event loop to termination and returns the final
// statistics. The first arrival is always scheduled, regardless of policy;
// afterwards the horizon policy decides both arrival generation and loop
// cutoff.
func (sim *Simulator) Run() Result {
	logrus.Infof("Starting simulation: %d server(s), horizon=%v", len(sim.servers), sim.Horizon)

	sim.Schedule(&ArrivalEvent{time: sim.drawExponential(SubsystemArrivals, sim.arrivalRate)})

	for sim.events.Len() > 0 {
		ev := sim.events.PopNext()
		if sim.policy.CutoffAtDispatch(ev.Timestamp(), sim.Horizon) {
			// Hard cutoff: the popped event and everything after it are
			// discarded, and the end time is pinned to the horizon.
			sim.Clock = sim.Horizon
			break
		}
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%012.4f] dispatching %s", sim.Clock, ev.Kind())
		if sim.trace != nil {
			sim.trace.Record(sim.Clock, ev.Kind())
		}
		ev.Execute(sim)
	}

	sim.Metrics.EndTime = sim.Clock
	logrus.Infof("[t=%012.4f] Simulation ended", sim.Clock)
	return sim.Metrics.Finalize()
}

// handleArrival processes one customer arrival: schedule the successor
// arrival if the policy allows, route, then attempt admission.
func (sim *Simulator) handleArrival(e *ArrivalEvent) {
	next := e.time + sim.drawExponential(SubsystemArrivals, sim.arrivalRate)
	if sim.policy.ScheduleNextArrival(next, sim.Horizon) {
		sim.Schedule(&ArrivalEvent{time: next})
	}

	// The single-server configuration skips the routing draw entirely; the
	// routing stream is isolated either way, so skipping never perturbs
	// arrival or service draws.
	idx := 0
	if len(sim.servers) > 1 {
		idx = sim.router.Choose(sim.variates.Uniform(SubsystemRouting))
	}

	srv := sim.servers[idx]
	switch srv.Admit(e.time) {
	case AdmissionRejected:
		logrus.Debugf("[t=%012.4f] server %d at capacity, dropping", e.time, idx)
		sim.Metrics.RecordDrop(idx)
	case AdmissionStartedService:
		sim.Metrics.RecordAdmission(idx)
		service := sim.drawExponential(SubsystemService, srv.Rate())
		sim.Metrics.RecordServiceStart(0, service)
		sim.Schedule(&DepartureEvent{
			time:        e.time + service,
			serverIndex: idx,
			arrivalTime: e.time,
		})
	case AdmissionQueued:
		sim.Metrics.RecordAdmission(idx)
	}
}

// handleDeparture processes one service completion: count the customer as
// served, then start service on the oldest waiting customer if any.
func (sim *Simulator) handleDeparture(e *DepartureEvent) {
	srv := sim.servers[e.serverIndex]
	sim.Metrics.RecordDeparture(e.serverIndex)

	if arrival, ok := srv.Complete(e.time); ok {
		wait := e.time - arrival
		service := sim.drawExponential(SubsystemService, srv.Rate())
		sim.Metrics.RecordServiceStart(wait, service)
		sim.Schedule(&DepartureEvent{
			time:        e.time + service,
			serverIndex: e.serverIndex,
			arrivalTime: arrival,
		})
	}
}

// drawExponential draws from the named stream with a rate the constructor
// already validated; a failure here is a programming defect.
func (sim *Simulator) drawExponential(subsystem string, rate float64) float64 {
	v, err := sim.variates.Exponential(subsystem, rate)
	if err != nil {
		panic(err)
	}
	return v
}

// Servers exposes the per-server state, read-only by convention. Useful for
// inspecting residual occupancy after a run.
func (sim *Simulator) Servers() []*Server {
	return sim.servers
}
