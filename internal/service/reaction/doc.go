// Package reaction implements the glove-reaction command, which asks the host
// daemon to produce new unhanded gloves the way a custom reaction does.
package reaction
