// Package glove contains core domain types for glove handedness.
//
// It defines Glove (an item with a right/left handedness flag pair) and
// FixPass, which assigns alternating handedness to unhanded gloves so they
// come in matched pairs.
package glove
