// Package hand lays out a player's hand of cards along a circular fan arc
// and animates cards toward their slots one frame at a time.
package hand

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cardtable/go-card-hand/wire"
)

// Capacity is the most cards a hand may hold. It is enforced by callers
// through IsFull, not inside Add.
const Capacity = 8

const (
	// Fractions of the viewport the fan occupies.
	widthFraction  = 0.8
	heightFraction = 0.12
	// Spacing between neighbouring cards on the arc, in card widths.
	maxSpacing = 0.8
	// How far above the bottom edge the arc's center sits.
	raiseFraction = 0.15
	// Per-frame fraction of the remaining distance a card travels.
	lerpFactor = 0.5
)

// Hand holds an ordered card sequence and a matching slot position per
// card. Order is left-to-right fan order. Both slices stay the same length
// across every mutation.
type Hand struct {
	width, height float64
	cfg           Config
	cards         []Card
	targets       []Point
}

// New creates an empty hand for a viewport of the given pixel size.
func New(width, height float64, cfg Config) *Hand {
	return &Hand{width: width, height: height, cfg: cfg}
}

// makeTargets computes the fan slot positions for count cards. Pure in
// count and the stored viewport size.
//
// The arc is sized so a chord of the usable hand width subtends fanAngle
// at fanRadius. Only a portion of the arc is used while the hand is small,
// growing with the card count until neighbours would sit closer than
// maxSpacing card widths apart.
func (h *Hand) makeTargets(count int) []Point {
	targets := make([]Point, 0, count)
	if count == 0 {
		return targets
	}

	handWidth := h.width * widthFraction
	handHeight := h.height * heightFraction

	fanAngle := math.Pi - math.Atan(0.5*handWidth/handHeight) - math.Atan(handHeight/(0.5*handWidth))
	fanRadius := 0.5 * handWidth / math.Sin(fanAngle)

	arcCards := 2 * fanAngle * fanRadius / (h.cfg.CardWidth * maxSpacing)
	portion := float64(count-1) / arcCards
	if portion > 1 {
		portion = 1
	}

	centerX := h.width * 0.5
	centerY := h.height*(1-raiseFraction) + fanRadius

	for i := range count {
		f := 0.5
		if count > 1 {
			f = 1 - float64(i)/float64(count-1)
		}
		angle := portion*fanAngle*(1-2*f) - math.Pi/2
		targets = append(targets, Point{
			X: centerX + math.Cos(angle)*fanRadius,
			Y: centerY + math.Sin(angle)*fanRadius,
		})
	}
	return targets
}

// Update moves every card a fixed fraction of the way to its slot. Call
// once per frame; positions converge exponentially and never overshoot.
func (h *Hand) Update() {
	for i, c := range h.cards {
		pos := c.Position()
		c.Move((h.targets[i].X-pos.X)*lerpFactor, (h.targets[i].Y-pos.Y)*lerpFactor)
	}
}

// Render draws the cards in fan order.
func (h *Hand) Render(dst *ebiten.Image, elapsed float64) {
	for _, c := range h.cards {
		c.Render(dst, elapsed)
	}
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int { return len(h.cards) }

// Cards returns the card sequence in fan order.
func (h *Hand) Cards() []Card { return h.cards }

// Targets returns the current slot positions, one per card.
func (h *Hand) Targets() []Point { return h.targets }

// IsFull reports whether the hand is at capacity.
func (h *Hand) IsFull() bool { return len(h.cards) == Capacity }

// Contains reports whether card is in the hand. Identity comparison, not
// value equality.
func (h *Hand) Contains(card Card) bool {
	for _, c := range h.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Add inserts card at the fan slot nearest its current position, shifting
// later cards right. Ties go to the leftmost slot. Add does not guard
// capacity; callers check IsFull first.
func (h *Hand) Add(card Card) {
	targets := h.makeTargets(len(h.cards) + 1)
	pos := card.Position()
	slot := 0
	best := math.MaxFloat64
	for i, t := range targets {
		dx, dy := t.X-pos.X, t.Y-pos.Y
		if d := dx*dx + dy*dy; d < best {
			best = d
			slot = i
		}
	}
	h.cards = append(h.cards, nil)
	copy(h.cards[slot+1:], h.cards[slot:])
	h.cards[slot] = card
	h.targets = targets
}

// Remove takes card out of the hand and repacks the fan. Removing a card
// that is not in the hand is a no-op.
func (h *Hand) Remove(card Card) {
	for i, c := range h.cards {
		if c == card {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			h.targets = h.makeTargets(len(h.cards))
			return
		}
	}
}

// Clear drops every card. The registry that owns the cards is not
// notified; it keeps tracking them.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.targets = h.targets[:0]
}

// Resize updates the viewport size and recomputes every slot, preserving
// card order.
func (h *Hand) Resize(width, height float64) {
	h.width = width
	h.height = height
	h.targets = h.makeTargets(len(h.cards))
}

// Serialize writes the hand segment: a uint8 card count followed by each
// card's payload in fan order. A card field outside its encodable range
// aborts with the card's error; the buffer may be left partially written.
func (h *Hand) Serialize(b *wire.Buffer) error {
	if err := b.WriteUint8("card count", len(h.cards)); err != nil {
		return err
	}
	for _, c := range h.cards {
		if err := c.Serialize(b); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads a hand segment, decoding each card with its slot as
// home position and registering it with reg. Decode order is fan order.
func (h *Hand) Deserialize(b *wire.Buffer, reg Registry) error {
	count, err := b.ReadUint8()
	if err != nil {
		return err
	}
	h.targets = h.makeTargets(count)
	for i := range count {
		card, err := h.cfg.Decode(b, h.targets[i])
		if err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		h.cards = append(h.cards, card)
		reg.RegisterCard(card)
	}
	return nil
}
