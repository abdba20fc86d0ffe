package ui

import "github.com/hajimehoshi/ebiten/v2"

type Msg interface{}

type Cmd func() Msg

// Tick is sent once per frame after input dispatch.
type Tick struct {
	DeltaTime float64
	Elapsed   float64
}

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseEnter
	MouseLeave
)

type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button ebiten.MouseButton
	Zone   *Zone
}

type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// Based on bubbletea model, but models draw straight to the screen in
// pixels instead of returning a view tree.
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	Draw(dst *ebiten.Image)
}

// Zoner is implemented by models that expose hover hit areas to the
// program loop.
type Zoner interface {
	Zones() []*Zone
}
