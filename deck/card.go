// Package deck provides the playing card drawn into hands and the
// registry that owns every card in play.
package deck

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oklog/ulid/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/cardtable/go-card-hand/hand"
	"github.com/cardtable/go-card-hand/wire"
)

// Rendered card size in pixels.
const (
	Width  = 60.0
	Height = 84.0
)

const (
	NumRanks = 13
	NumSuits = 4
)

var rankNames = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// basicfont has no suit glyphs, so suits render as letters.
var suitNames = [NumSuits]string{"S", "H", "D", "C"}

var (
	faceColor  = color.RGBA{0xf2, 0xea, 0xd3, 0xff}
	edgeColor  = color.RGBA{0x2b, 0x26, 0x1e, 0xff}
	blackColor = color.RGBA{0x2b, 0x26, 0x1e, 0xff}
	redColor   = color.RGBA{0xb3, 0x2d, 0x2d, 0xff}
)

// Card is a standard playing card with a mutable pixel position. Position
// is the card's center.
type Card struct {
	ID   ulid.ULID
	Rank int
	Suit int

	x, y float64
}

// New creates a card at the given position.
func New(rank, suit int, at hand.Point) *Card {
	return &Card{ID: ulid.Make(), Rank: rank, Suit: suit, x: at.X, y: at.Y}
}

func (c *Card) Position() hand.Point { return hand.Point{X: c.x, Y: c.y} }

func (c *Card) Move(dx, dy float64) {
	c.x += dx
	c.y += dy
}

// Name returns a short label like "10H".
func (c *Card) Name() string {
	if c.Rank < 0 || c.Rank >= NumRanks || c.Suit < 0 || c.Suit >= NumSuits {
		return "?"
	}
	return rankNames[c.Rank] + suitNames[c.Suit]
}

// Render draws the card face. A slow bob keyed on elapsed time keeps idle
// hands from looking frozen.
func (c *Card) Render(dst *ebiten.Image, elapsed float64) {
	bob := math.Sin(elapsed*2+c.x*0.05) * 1.5
	x := float32(c.x - Width/2)
	y := float32(c.y - Height/2 + bob)

	vector.DrawFilledRect(dst, x, y, Width, Height, faceColor, true)
	vector.StrokeRect(dst, x, y, Width, Height, 2, edgeColor, true)

	clr := color.Color(blackColor)
	if c.Suit == 1 || c.Suit == 2 {
		clr = redColor
	}
	text.Draw(dst, c.Name(), basicfont.Face7x13, int(x)+5, int(y)+15, clr)
}

// Serialize writes the card payload: rank then suit, one byte each.
func (c *Card) Serialize(b *wire.Buffer) error {
	if c.Rank < 0 || c.Rank >= NumRanks {
		return &wire.RangeError{Field: "rank", Value: c.Rank, Min: 0, Max: NumRanks - 1}
	}
	if c.Suit < 0 || c.Suit >= NumSuits {
		return &wire.RangeError{Field: "suit", Value: c.Suit, Min: 0, Max: NumSuits - 1}
	}
	if err := b.WriteUint8("rank", c.Rank); err != nil {
		return err
	}
	return b.WriteUint8("suit", c.Suit)
}

// Decode reads one card payload and places the card at its home slot.
// Decode satisfies hand.DecodeFunc.
func Decode(b *wire.Buffer, home hand.Point) (hand.Card, error) {
	rank, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	suit, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	if rank >= NumRanks {
		return nil, &wire.RangeError{Field: "rank", Value: rank, Min: 0, Max: NumRanks - 1}
	}
	if suit >= NumSuits {
		return nil, &wire.RangeError{Field: "suit", Value: suit, Min: 0, Max: NumSuits - 1}
	}
	return New(rank, suit, home), nil
}
