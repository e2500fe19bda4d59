package glove

import "time"

// Hand selects one of the two handedness flags of a glove.
type Hand int

const (
	// Right is the index of the isRight flag.
	Right Hand = iota
	// Left is the index of the isLeft flag.
	Left
)

// Other returns the opposite hand.
func (h Hand) Other() Hand {
	return h ^ 1
}

// String returns a human-readable hand name.
func (h Hand) String() string {
	if h == Left {
		return "left"
	}

	return "right"
}

// Glove is an equippable item that may be oriented to a specific hand.
type Glove struct {
	// ID is the host item identifier.
	ID int64
	// Handedness holds the [isRight, isLeft] flag pair.
	Handedness [2]bool
	// CreatedAt is when the host produced the item.
	CreatedAt time.Time
}

// IsUnhanded reports whether neither handedness flag is set.
func (g *Glove) IsUnhanded() bool {
	return !g.Handedness[Right] && !g.Handedness[Left]
}

// Clone returns a copy of the glove to avoid leaking internal references.
func (g *Glove) Clone() *Glove {
	if g == nil {
		return nil
	}

	cloned := *g

	return &cloned
}
