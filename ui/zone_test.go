package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestZoneInBounds(t *testing.T) {
	z := &Zone{X: 10, Y: 20, W: 30, H: 40}
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{39, 59, true},
		{40, 59, false},
		{39, 60, false},
		{9, 20, false},
		{0, 0, false},
	}
	for _, c := range cases {
		if got := z.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestZoneClickRouting(t *testing.T) {
	clicks := 0
	z := &Zone{X: 0, Y: 0, W: 100, H: 100,
		Click: func(msg Msg) Cmd {
			clicks++
			return nil
		},
	}

	z.Update(MouseEvent{X: 50, Y: 50, Action: MousePress, Button: ebiten.MouseButtonLeft})
	if clicks != 1 {
		t.Errorf("clicks = %d after press inside, want 1", clicks)
	}

	z.Update(MouseEvent{X: 150, Y: 50, Action: MousePress, Button: ebiten.MouseButtonLeft})
	if clicks != 1 {
		t.Errorf("clicks = %d after press outside, want 1", clicks)
	}

	z.Update(MouseEvent{X: 50, Y: 50, Action: MousePress, Button: ebiten.MouseButtonRight})
	if clicks != 1 {
		t.Errorf("clicks = %d after right press, want 1", clicks)
	}
}

func TestZoneEnterLeave(t *testing.T) {
	var events []string
	z := &Zone{X: 0, Y: 0, W: 10, H: 10,
		Enter: func(msg Msg) Cmd {
			events = append(events, "enter")
			return nil
		},
		Leave: func(msg Msg) Cmd {
			events = append(events, "leave")
			return nil
		},
	}
	other := &Zone{}

	z.Update(MouseEvent{Action: MouseEnter, Zone: z})
	z.Update(MouseEvent{Action: MouseEnter, Zone: other})
	z.Update(MouseEvent{Action: MouseLeave, Zone: z})

	if len(events) != 2 || events[0] != "enter" || events[1] != "leave" {
		t.Errorf("events = %v, want [enter leave]", events)
	}
}
