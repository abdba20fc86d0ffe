package ui

import "github.com/hajimehoshi/ebiten/v2"

// Zone is a rectangular pixel-space hit area. Enter and Leave fire from
// the program's hover tracking; Click and Release fire when the owning
// model routes press/release events through Update.
type Zone struct {
	X, Y, W, H int
	Enter      func(msg Msg) Cmd
	Leave      func(msg Msg) Cmd
	Click      func(msg Msg) Cmd
	Release    func(msg Msg) Cmd

	hovered bool
}

func (z *Zone) InBounds(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

func (z *Zone) Hovered() bool { return z.hovered }

// Update routes a mouse event to the zone's callbacks. Press and release
// only fire inside the zone's bounds and for the left button.
func (z *Zone) Update(msg Msg) Cmd {
	m, ok := msg.(MouseEvent)
	if !ok {
		return nil
	}
	switch m.Action {
	case MousePress:
		if z.Click != nil && m.Button == ebiten.MouseButtonLeft && z.InBounds(m.X, m.Y) {
			return z.Click(m)
		}
	case MouseRelease:
		if z.Release != nil && m.Button == ebiten.MouseButtonLeft && z.InBounds(m.X, m.Y) {
			return z.Release(m)
		}
	case MouseEnter:
		if z.Enter != nil && m.Zone == z {
			return z.Enter(m)
		}
	case MouseLeave:
		if z.Leave != nil && m.Zone == z {
			return z.Leave(m)
		}
	}
	return nil
}
