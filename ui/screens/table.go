// Package screens contains the screens shown by the demo commands.
package screens

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cardtable/go-card-hand/deck"
	"github.com/cardtable/go-card-hand/hand"
	"github.com/cardtable/go-card-hand/ui"
	"github.com/cardtable/go-card-hand/wire"
)

// How far the fan lifts when the hand area is hovered.
const handLift = 40.0

var (
	tableColor = color.RGBA{0x1e, 0x3d, 0x2f, 0xff}
	slotColor  = color.RGBA{0x4a, 0x6b, 0x58, 0xff}
	pileColor  = color.RGBA{0x5a, 0x32, 0x2a, 0xff}
	pileEdge   = color.RGBA{0x2b, 0x26, 0x1e, 0xff}
)

// Table is the demo screen: a draw pile on the right and a fanned hand
// along the bottom edge.
type Table struct {
	width, height int
	initialCards  int

	hand     *hand.Hand
	registry *deck.Registry
	zones    []*ui.Zone
	elapsed  float64
	saved    []byte
	status   string
}

func NewTable(width, height, initialCards int) *Table {
	t := &Table{
		width:        width,
		height:       height,
		initialCards: initialCards,
		registry:     deck.NewRegistry(),
	}
	t.hand = hand.New(float64(width), float64(height), hand.Config{
		CardWidth: deck.Width,
		Decode:    deck.Decode,
	})
	return t
}

func (t *Table) Init() ui.Cmd {
	handTop := int(float64(t.height) * 0.7)
	t.zones = []*ui.Zone{
		{
			// Hand area: hovering raises the fan.
			X: 0, Y: handTop, W: t.width, H: t.height - handTop,
			Enter: func(msg ui.Msg) ui.Cmd {
				t.hand.Resize(float64(t.width), float64(t.height)-handLift)
				return nil
			},
			Leave: func(msg ui.Msg) ui.Cmd {
				t.hand.Resize(float64(t.width), float64(t.height))
				return nil
			},
		},
		{
			X: t.pileX(), Y: t.pileY(), W: deck.Width, H: deck.Height,
			Click: func(msg ui.Msg) ui.Cmd {
				t.drawCard()
				return nil
			},
		},
	}
	for range t.initialCards {
		t.drawCard()
	}
	return nil
}

func (t *Table) pileX() int { return t.width - deck.Width - 24 }
func (t *Table) pileY() int { return t.height/2 - deck.Height/2 }

// drawCard deals a random card from the pile position into the hand.
func (t *Table) drawCard() {
	if t.hand.IsFull() {
		t.status = "hand is full"
		return
	}
	at := hand.Point{
		X: float64(t.pileX()) + deck.Width/2,
		Y: float64(t.pileY()) + deck.Height/2,
	}
	c := deck.New(rand.Intn(deck.NumRanks), rand.Intn(deck.NumSuits), at)
	t.registry.RegisterCard(c)
	t.hand.Add(c)
	t.status = "drew " + c.Name()
}

// cardAt returns the topmost hand card under the cursor.
func (t *Table) cardAt(x, y int) hand.Card {
	cards := t.hand.Cards()
	for i := len(cards) - 1; i >= 0; i-- {
		pos := cards[i].Position()
		if math.Abs(float64(x)-pos.X) <= deck.Width/2 && math.Abs(float64(y)-pos.Y) <= deck.Height/2 {
			return cards[i]
		}
	}
	return nil
}

func (t *Table) save() {
	buf := wire.NewBuffer(nil)
	if err := t.hand.Serialize(buf); err != nil {
		t.status = "save failed: " + err.Error()
		return
	}
	t.saved = buf.Bytes()
	t.status = fmt.Sprintf("saved %d bytes", len(t.saved))
}

func (t *Table) load() {
	if t.saved == nil {
		t.status = "nothing saved"
		return
	}
	t.hand.Clear()
	if err := t.hand.Deserialize(wire.NewBuffer(t.saved), t.registry); err != nil {
		t.status = "load failed: " + err.Error()
		return
	}
	t.status = fmt.Sprintf("loaded %d cards", t.hand.Len())
}

func (t *Table) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	switch m := msg.(type) {
	case ui.Tick:
		t.elapsed = m.Elapsed
		t.hand.Update()
	case ui.MouseEvent:
		if m.Action == ui.MousePress && m.Button == ebiten.MouseButtonRight {
			if c := t.cardAt(m.X, m.Y); c != nil {
				t.hand.Remove(c)
				t.status = "discarded " + c.(*deck.Card).Name()
			}
			return t, nil
		}
		for _, z := range t.zones {
			if cmd := z.Update(m); cmd != nil {
				return t, cmd
			}
		}
	case ui.KeyEvent:
		switch m.Key {
		case ebiten.KeyS:
			t.save()
		case ebiten.KeyL:
			t.load()
		case ebiten.KeyC:
			t.hand.Clear()
			t.status = "cleared"
		}
	}
	return t, nil
}

func (t *Table) Draw(dst *ebiten.Image) {
	dst.Fill(tableColor)

	vector.DrawFilledRect(dst, float32(t.pileX()), float32(t.pileY()), deck.Width, deck.Height, pileColor, true)
	vector.StrokeRect(dst, float32(t.pileX()), float32(t.pileY()), deck.Width, deck.Height, 2, pileEdge, true)

	for _, p := range t.hand.Targets() {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), 3, slotColor, true)
	}
	t.hand.Render(dst, t.elapsed)

	ebitenutil.DebugPrintAt(dst, "click pile: draw  right click: discard  S/L: save/load  C: clear", 8, t.height-18)
	if t.status != "" {
		ebitenutil.DebugPrintAt(dst, t.status, 8, t.height-34)
	}
}

func (t *Table) Zones() []*ui.Zone { return t.zones }

// Hand exposes the hand for the dump command and tests.
func (t *Table) Hand() *hand.Hand { return t.hand }

// Registry exposes the owning card registry.
func (t *Table) Registry() *deck.Registry { return t.registry }
