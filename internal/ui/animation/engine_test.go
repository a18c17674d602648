package animation

import (
	"testing"
	"time"

	"cutekm/internal/core/companion"
	"cutekm/internal/core/model"
)

func testLibrary() Library[string] {
	var library Library[string]
	library[companion.StateTyping] = []string{"t1", "t2", "t3"}
	library[companion.StateWatching] = []string{"w1", "w2", "w3", "w4", "w5"}
	library[companion.StateMouse] = []string{"m1", "m2"}
	library[companion.StateIdle] = []string{"i1"}
	return library
}

func newTestEngine(library Library[string]) (*Engine[string], *companion.Machine, *[]string) {
	machine := companion.New(model.DefaultAppConfig().Behavior, time.Unix(0, 0))
	shown := []string{}
	engine := New(library, machine, func(frame string) {
		shown = append(shown, frame)
	})
	return engine, machine, &shown
}

func TestTickCyclesFrames(t *testing.T) {
	engine, machine, shown := newTestEngine(testLibrary())

	for i := 0; i < 7; i++ {
		if !engine.Tick() {
			t.Fatalf("tick %d reported an empty set", i)
		}
	}

	want := []string{"w1", "w2", "w3", "w4", "w5", "w1", "w2"}
	for i, frame := range want {
		if (*shown)[i] != frame {
			t.Fatalf("frame %d = %s, want %s (all %v)", i, (*shown)[i], frame, *shown)
		}
	}
	if machine.FrameIndex() != 2 {
		t.Fatalf("frame index = %d, want 2", machine.FrameIndex())
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	library := testLibrary()
	for state := companion.State(0); state < companion.StateCount; state++ {
		engine, machine, _ := newTestEngine(library)
		machine.SwitchTo(state, time.Unix(0, 0), "test")
		engine.Tick()
		start := machine.FrameIndex()

		for i := 0; i < library.Len(state); i++ {
			engine.Tick()
		}
		if machine.FrameIndex() != start {
			t.Errorf("%v: frame index = %d after %d ticks, want %d", state, machine.FrameIndex(), library.Len(state), start)
		}
	}
}

func TestStateChangeRestartsSequence(t *testing.T) {
	engine, machine, shown := newTestEngine(testLibrary())
	engine.Tick()
	engine.Tick()

	machine.KeyPressed(time.Unix(10, 0))
	engine.Tick()

	if last := (*shown)[len(*shown)-1]; last != "t1" {
		t.Fatalf("first frame after state change = %s, want t1", last)
	}
}

func TestEmptySetIsNoop(t *testing.T) {
	library := testLibrary()
	library[companion.StateWatching] = nil
	engine, machine, shown := newTestEngine(library)

	if engine.Tick() {
		t.Fatal("Tick reported a frame for an empty set")
	}
	if len(*shown) != 0 || machine.FrameIndex() != 0 {
		t.Fatalf("shown = %v, index = %d", *shown, machine.FrameIndex())
	}
}

func TestForFallsBackToWatching(t *testing.T) {
	library := testLibrary()
	frames := library.For(companion.StateCount + 3)
	if len(frames) != 5 || frames[0] != "w1" {
		t.Fatalf("fallback frames = %v", frames)
	}
}

type stuckCursor struct {
	state    companion.State
	index    int
	advances int
}

func (cursor *stuckCursor) State() companion.State { return cursor.state }
func (cursor *stuckCursor) FrameIndex() int        { return cursor.index }
func (cursor *stuckCursor) Advance(int)            { cursor.advances++ }

func TestTickClampsOutOfRangeIndex(t *testing.T) {
	cursor := &stuckCursor{state: companion.StateMouse, index: 7}
	var shown string
	engine := New(testLibrary(), cursor, func(frame string) { shown = frame })

	engine.Tick()

	if shown != "m2" || cursor.advances != 1 {
		t.Fatalf("shown = %s, advances = %d", shown, cursor.advances)
	}
}
