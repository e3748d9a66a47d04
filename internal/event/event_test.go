package event

import "testing"

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatch_OrderAndFiltering(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	d.Subscribe(BallHit, a)
	d.Subscribe(BallHit, b)
	d.Subscribe(RoundEnded, b)

	d.Dispatch(Event{Type: BallHit})
	d.Dispatch(Event{Type: WeaponFired})
	d.Dispatch(Event{Type: RoundEnded})

	want := []string{"a:BallHit", "b:BallHit", "b:RoundEnded"}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("got %v, want %v", log, want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	d.Subscribe(BallHit, a)
	d.Subscribe(BallHit, b)

	d.Unsubscribe(BallHit, a)
	d.Unsubscribe(WeaponFired, a)
	d.Dispatch(Event{Type: BallHit})

	if len(log) != 1 || log[0] != "b:BallHit" {
		t.Fatalf("got %v", log)
	}
}
