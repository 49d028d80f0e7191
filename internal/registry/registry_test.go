package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tetra/internal/core"
)

type stubMode struct{ id string }

func (s stubMode) ID() string                           { return s.id }
func (s stubMode) Title() string                        { return "Stub " + s.id }
func (s stubMode) Reset(core.RuntimeConfig)             {}
func (s stubMode) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubMode) Render(*core.Screen)                  {}
func (s stubMode) State() core.ModeState                { return core.ModeState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Mode { return stubMode{id: "zz-stub"} })
	Register("aa-stub", func() Mode { return stubMode{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Error("zz-stub should exist")
	}

	m, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if m.ID() != "aa-stub" {
		t.Errorf("ID() = %q", m.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz-stub" && info.Title == "Stub zz-stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() = %v, missing zz-stub", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-mode"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create() error = %v, expected ErrUnknownMode", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Mode { return stubMode{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Mode { return stubMode{id: "dup-stub"} })
}
