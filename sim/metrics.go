// Tracks simulation-wide and per-server statistics: customers served and
// dropped, cumulative waiting and service time, and the simulated end time.

package sim

import "fmt"

// ServerTally holds per-server counters for final reporting.
type ServerTally struct {
	Admitted int // arrivals accepted (immediate service or queued)
	Dropped  int // arrivals rejected at capacity
	Served   int // departures dispatched
}

// Metrics aggregates statistics about the simulation for final reporting.
//
// Waiting and service time are accumulated when a customer's departure is
// scheduled, not when it fires: a customer entering service directly
// contributes an explicit 0.0 wait, and its drawn service time counts even
// if a hard cutoff later discards the departure. Served counts only
// dispatched departures.
type Metrics struct {
	Served       int
	Dropped      int
	TotalWait    float64
	TotalService float64
	EndTime      float64

	PerServer []ServerTally
}

// NewMetrics creates a Metrics accumulator for the given number of servers.
func NewMetrics(numServers int) *Metrics {
	return &Metrics{PerServer: make([]ServerTally, numServers)}
}

// RecordAdmission tallies an accepted arrival at the given server.
func (m *Metrics) RecordAdmission(server int) {
	m.PerServer[server].Admitted++
}

// RecordDrop tallies an arrival rejected at the given server.
func (m *Metrics) RecordDrop(server int) {
	m.Dropped++
	m.PerServer[server].Dropped++
}

// RecordServiceStart accumulates a customer's wait and freshly drawn
// service time at the moment its departure is scheduled. Zero-wait
// customers pass wait=0 explicitly so they stay in the average's
// denominator and numerator alike.
func (m *Metrics) RecordServiceStart(wait, service float64) {
	m.TotalWait += wait
	m.TotalService += service
}

// RecordDeparture tallies a dispatched departure at the given server.
func (m *Metrics) RecordDeparture(server int) {
	m.Served++
	m.PerServer[server].Served++
}

// Finalize computes the derived averages and returns the read-only Result.
// Averages are 0.0 when nothing was served.
func (m *Metrics) Finalize() Result {
	r := Result{
		Served:  m.Served,
		Dropped: m.Dropped,
		EndTime: m.EndTime,
	}
	if m.Served > 0 {
		r.AverageWait = m.TotalWait / float64(m.Served)
		r.AverageService = m.TotalService / float64(m.Served)
	}
	return r
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	r := m.Finalize()
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Served               : %d\n", r.Served)
	fmt.Printf("Dropped              : %d\n", r.Dropped)
	fmt.Printf("End Time             : %.4f\n", r.EndTime)
	fmt.Printf("Average Wait         : %.4f\n", r.AverageWait)
	fmt.Printf("Average Service      : %.4f\n", r.AverageService)
	for i, t := range m.PerServer {
		fmt.Printf("Server %d             : admitted=%d dropped=%d served=%d\n",
			i, t.Admitted, t.Dropped, t.Served)
	}
}

// Result holds the final statistics of one simulation run. Computed once at
// termination; read-only thereafter.
type Result struct {
	Served         int
	Dropped        int
	EndTime        float64
	AverageWait    float64
	AverageService float64
}

// String renders the result in the fixed 4-decimal textual form consumed by
// the CLI layer: "served dropped endTime averageWait averageService".
func (r Result) String() string {
	return fmt.Sprintf("%d %d %.4f %.4f %.4f",
		r.Served, r.Dropped, r.EndTime, r.AverageWait, r.AverageService)
}
