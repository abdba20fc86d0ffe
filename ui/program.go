package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Program drives a Model from the ebiten game loop. All dispatch happens
// on the game loop goroutine; models never see concurrent calls.
type Program struct {
	M             Model
	Width, Height int
	ShowDebug     bool

	lastMouseX, lastMouseY int
	elapsed                float64
	initialized            bool
}

func (p *Program) Update() error {
	if !p.initialized {
		p.initialized = true
		p.runCmd(p.M.Init())
	}
	mx, my := ebiten.CursorPosition()
	if mx != p.lastMouseX || my != p.lastMouseY {
		p.dispatchHover(mx, my)
		p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseMotion})
		p.lastMouseX = mx
		p.lastMouseY = my
	}
	for i := range ebiten.MouseButtonMax {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButton(i)) {
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MousePress, Button: ebiten.MouseButton(i)})
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButton(i)) {
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseRelease, Button: ebiten.MouseButton(i)})
		}
	}
	for i := range ebiten.KeyMax {
		if inpututil.IsKeyJustPressed(ebiten.Key(i)) {
			p.runUpdate(KeyEvent{Key: ebiten.Key(i), Pressed: true})
		}
	}
	dt := 1.0 / float64(ebiten.TPS())
	p.elapsed += dt
	p.runUpdate(Tick{DeltaTime: dt, Elapsed: p.elapsed})
	return nil
}

// dispatchHover tracks the cursor against the model's zones and fires
// enter/leave transitions.
func (p *Program) dispatchHover(mx, my int) {
	zoner, ok := p.M.(Zoner)
	if !ok {
		return
	}
	for _, z := range zoner.Zones() {
		in := z.InBounds(mx, my)
		switch {
		case in && !z.hovered:
			z.hovered = true
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseEnter, Zone: z})
		case !in && z.hovered:
			z.hovered = false
			p.runUpdate(MouseEvent{X: mx, Y: my, Action: MouseLeave, Zone: z})
		}
	}
}

func (p *Program) runUpdate(msg Msg) {
	var cmd Cmd
	for msg != nil {
		p.M, cmd = p.M.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func (p *Program) runCmd(cmd Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		p.runUpdate(msg)
	}
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.M.Draw(screen)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}
