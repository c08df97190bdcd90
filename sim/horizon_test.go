package sim

import (
	"errors"
	"testing"
)

func TestNewHorizonPolicy_Selection(t *testing.T) {
	tests := []struct {
		name    string
		mode    HorizonMode
		wantErr error
	}{
		{"hard", HorizonHard, nil},
		{"drain", HorizonDrain, nil},
		{"empty defaults to drain", HorizonMode(""), nil},
		{"unknown", HorizonMode("strict"), ErrInvalidConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewHorizonPolicy(tt.mode)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewHorizonPolicy(%q): got err %v, want %v", tt.mode, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHorizonPolicy(%q): unexpected error %v", tt.mode, err)
			}
			if p == nil {
				t.Fatal("NewHorizonPolicy returned nil policy without error")
			}
		})
	}
}

func TestHardCutoff_Semantics(t *testing.T) {
	p, err := NewHorizonPolicy(HorizonHard)
	if err != nil {
		t.Fatalf("NewHorizonPolicy: %v", err)
	}

	// Arrivals are always scheduled, however far past the horizon they land
	if !p.ScheduleNextArrival(1e9, 100.0) {
		t.Error("hard cutoff must always schedule the next arrival")
	}

	// Dispatch stops the instant a popped event exceeds the horizon
	if p.CutoffAtDispatch(100.0, 100.0) {
		t.Error("event at exactly the horizon must still be dispatched")
	}
	if !p.CutoffAtDispatch(100.0001, 100.0) {
		t.Error("event past the horizon must cut the run off")
	}
}

func TestDrainAfterHorizon_Semantics(t *testing.T) {
	p, err := NewHorizonPolicy(HorizonDrain)
	if err != nil {
		t.Fatalf("NewHorizonPolicy: %v", err)
	}

	// Next arrivals are gated at the horizon
	if !p.ScheduleNextArrival(100.0, 100.0) {
		t.Error("arrival at exactly the horizon must be scheduled")
	}
	if p.ScheduleNextArrival(100.0001, 100.0) {
		t.Error("arrival past the horizon must not be scheduled")
	}

	// Dispatch never cuts off; pending work drains fully
	if p.CutoffAtDispatch(1e9, 100.0) {
		t.Error("drain policy must never cut off at dispatch")
	}
}

func TestAvailableHorizonModes(t *testing.T) {
	modes := AvailableHorizonModes()
	if len(modes) != 2 {
		t.Fatalf("got %d modes, want 2", len(modes))
	}
}
