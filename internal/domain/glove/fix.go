package glove

// FixResult summarises a single FixPass.
type FixResult struct {
	// FixedCount is the number of gloves that received a handedness.
	FixedCount int
}

// FixPass assigns alternating handedness, right first, to every unhanded
// glove in order and returns how many were fixed.
//
// Gloves that already have any flag set are left untouched, including gloves
// with both flags set. The alternation restarts from Right on every call.
func FixPass(gloves []*Glove) FixResult {
	var (
		hand   = Right
		result FixResult
	)

	for _, g := range gloves {
		if g == nil || !g.IsUnhanded() {
			continue
		}

		g.Handedness[hand] = true
		hand = hand.Other()
		result.FixedCount++
	}

	return result
}
