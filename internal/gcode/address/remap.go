package address

// Remap maps the ordinals a region's lines carried before a rebuild to the
// ordinals they carry afterwards. Lines dropped during the rebuild have no
// entry, so references to them stay unresolved.
type Remap struct {
	table map[int]int
}

// NewRemap creates an empty remap table.
func NewRemap() *Remap {
	return &Remap{table: make(map[int]int)}
}

// Add records oldN -> newN. Negative old ordinals (unanchored lines) are
// ignored, and the first mapping recorded for an ordinal wins.
// Returns false if nothing was recorded.
func (r *Remap) Add(oldN, newN int) bool {
	if oldN < 0 {
		return false
	}
	if _, exists := r.table[oldN]; exists {
		return false
	}
	r.table[oldN] = newN
	return true
}

// Lookup returns the new ordinal for oldN.
func (r *Remap) Lookup(oldN int) (int, bool) {
	n, ok := r.table[oldN]
	return n, ok
}

// Len returns the number of recorded mappings.
func (r *Remap) Len() int {
	return len(r.table)
}
