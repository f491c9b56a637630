package core

import (
	"errors"
	"testing"
)

type stubSim struct{}

func (stubSim) Name() string   { return "stub" }
func (stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)    {}
func (stubSim) Step()          {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistryLookup(t *testing.T) {
	Register("stub-test", func(map[string]string) Sim { return stubSim{} })
	f, err := Lookup("stub-test")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if f(nil).Name() != "stub" {
		t.Fatal("factory returned wrong sim")
	}
	if _, err := Lookup("does-not-exist"); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("expected ErrUnknownSim, got %v", err)
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("empty registrations should be ignored")
	}
}
