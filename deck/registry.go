package deck

import (
	"github.com/oklog/ulid/v2"

	"github.com/cardtable/go-card-hand/hand"
)

// Registry owns every card in play. Hands hold borrowed references into
// it; dropping a card from a hand leaves it registered here until the
// registry releases it.
type Registry struct {
	cards map[ulid.ULID]*Card
}

func NewRegistry() *Registry {
	return &Registry{cards: make(map[ulid.ULID]*Card)}
}

// RegisterCard starts tracking a card. Registering the same card again is
// a no-op. Satisfies hand.Registry.
func (r *Registry) RegisterCard(c hand.Card) {
	if card, ok := c.(*Card); ok {
		r.cards[card.ID] = card
	}
}

// Release stops tracking a card, ending its lifetime.
func (r *Registry) Release(c *Card) {
	delete(r.cards, c.ID)
}

// Len returns the number of tracked cards.
func (r *Registry) Len() int { return len(r.cards) }

// Get looks a card up by id.
func (r *Registry) Get(id ulid.ULID) (*Card, bool) {
	c, ok := r.cards[id]
	return c, ok
}
