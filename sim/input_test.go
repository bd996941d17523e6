package sim

import (
	"sync"
	"testing"
)

func TestInputQueueDrainsPresses(t *testing.T) {
	q := &InputQueue{}
	q.Hold(ControlLeft, true)
	q.Hold(ControlFire, true)
	q.Press(ActionLaunch)
	q.Press(ActionLaunch)

	in := q.Sample()
	if !in.Held.Has(ControlLeft|ControlFire) || !in.Pressed.Has(ActionLaunch) {
		t.Errorf("unexpected sample %+v", in)
	}
	in = q.Sample()
	if in.Pressed != 0 {
		t.Error("pressed set should be drained")
	}
	if !in.Held.Has(ControlLeft) {
		t.Error("held set should persist")
	}

	q.Hold(ControlLeft, false)
	if q.Sample().Held.Has(ControlLeft) {
		t.Error("released control should clear")
	}
	q.SetHeld(ControlBoost)
	if q.Sample().Held != ControlBoost {
		t.Error("SetHeld should replace the held set")
	}
}

func TestInputQueueConcurrentWriters(t *testing.T) {
	q := &InputQueue{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Hold(ControlUp, j%2 == 0)
				q.Press(ActionFire)
			}
		}(i)
	}
	wg.Wait()
	if !q.Sample().Pressed.Has(ActionFire) {
		t.Error("expected fire press")
	}
}
