package chime

import "koshi-chime.dev/internal/config"

// Definition is one named chime tuning: an ordered pitch per rod index.
type Definition struct {
	Name  string
	Notes [config.RodCount]uint8
}

// The four built-in tunings. Rod index 0 sits at north, indexes increase
// clockwise, and each table reads in the same order.
var definitions = []Definition{
	{
		// Earth: C major pentatonic, low register
		Name:  "Terra",
		Notes: [config.RodCount]uint8{48, 50, 52, 55, 57, 60, 62, 64},
	},
	{
		// Water: D minor pentatonic
		Name:  "Aqua",
		Notes: [config.RodCount]uint8{50, 53, 55, 57, 60, 62, 65, 67},
	},
	{
		// Air: A major pentatonic, high register
		Name:  "Aria",
		Notes: [config.RodCount]uint8{69, 71, 73, 76, 78, 81, 83, 85},
	},
	{
		// Fire: G mixolydian fragment
		Name:  "Ignis",
		Notes: [config.RodCount]uint8{55, 57, 59, 60, 62, 64, 65, 67},
	},
}

// Bank holds the active chime selection. Exactly one variant is active at a
// time; selection only changes through Next/Prev/Select.
type Bank struct {
	active int
}

// NewBank returns a bank with the first variant active.
func NewBank() *Bank {
	return &Bank{}
}

// VariantCount returns the number of built-in tunings.
func VariantCount() int {
	return len(definitions)
}

// VariantNames returns the tuning names in selection order.
func VariantNames() []string {
	names := make([]string, len(definitions))
	for i, d := range definitions {
		names[i] = d.Name
	}
	return names
}

// Active returns the index of the active variant.
func (b *Bank) Active() int {
	return b.active
}

// Definition returns the active variant's definition.
func (b *Bank) Definition() Definition {
	return definitions[b.active]
}

// Notes returns the active pitch table, one pitch per rod index.
func (b *Bank) Notes() [config.RodCount]uint8 {
	return definitions[b.active].Notes
}

// Next advances to the following variant, wrapping circularly.
func (b *Bank) Next() {
	b.active = (b.active + 1) % len(definitions)
}

// Prev steps back to the preceding variant, wrapping circularly.
func (b *Bank) Prev() {
	b.active = (b.active + len(definitions) - 1) % len(definitions)
}

// Select activates the variant at index i. Out-of-range indexes wrap.
func (b *Bank) Select(i int) {
	n := len(definitions)
	b.active = ((i % n) + n) % n
}

// SelectByName activates the variant with the given name. Returns false and
// leaves the selection unchanged when no variant matches.
func (b *Bank) SelectByName(name string) bool {
	for i, d := range definitions {
		if d.Name == name {
			b.active = i
			return true
		}
	}
	return false
}
