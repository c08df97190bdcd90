// Package sim provides the core discrete-event simulation engine for
// finite-capacity queueing networks of the M/M/c/K family.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the Arrival/Departure events that drive the simulation
//   - server.go: the per-server admission and service state machine
//   - simulator.go: the event loop and statistics accumulation
//
// # Architecture
//
// A Simulator owns an EventHeap (deterministic time-ordered dispatch), a set
// of Servers (finite-capacity FIFO queues), a Router (probabilistic arrival
// splitting), a VariateSource (seedable partitioned random streams), and a
// Metrics accumulator. A run is a pure in-memory computation from a
// SimulationConfig to a Result; there is no shared or global state, so
// independent runs may be constructed side by side.
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Event: anything the heap can dispatch (Timestamp, Kind, Execute)
//   - HorizonPolicy: when arrival generation stops and how the run terminates
//     (HardCutoff discards everything past the horizon, DrainAfterHorizon
//     stops generating arrivals but drains all pending work)
package sim
