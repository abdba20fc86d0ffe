package hand

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cardtable/go-card-hand/wire"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Card is the card collaborator the hand lays out. The hand moves cards
// through Move and never touches their state otherwise; it holds borrowed
// references and does not own card lifetimes.
type Card interface {
	Position() Point
	Move(dx, dy float64)
	Render(dst *ebiten.Image, elapsed float64)
	Serialize(b *wire.Buffer) error
}

// Registry receives every card produced by Deserialize. The registry is
// the owning side of the shared card references.
type Registry interface {
	RegisterCard(Card)
}

// DecodeFunc reads one card payload from b and places the card at its home
// slot position.
type DecodeFunc func(b *wire.Buffer, home Point) (Card, error)

// Config carries the values the hand needs from its surroundings: the
// rendered card width the fan spacing is based on, and the card decoder
// used by Deserialize.
type Config struct {
	CardWidth float64
	Decode    DecodeFunc
}
