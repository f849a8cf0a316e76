package address

// SetLetter returns the set letter for the region at position i of its
// kind's collection: 0 is 'A', 25 is 'Z' and 26 wraps back to 'A'.
func SetLetter(i int) byte {
	if i < 0 {
		i = -i
	}
	return byte('A' + i%26)
}

// NextSetLetter returns the letter after c, wrapping 'Z' to 'A'.
func NextSetLetter(c byte) byte {
	c = upper(c)
	if c < 'A' || c >= 'Z' {
		return 'A'
	}
	return c + 1
}

// NextLetter scans the whole document for display tags of any kind and
// returns the letter after the highest set letter seen. A document without
// tags yields 'A'.
//
// The answer is derived from the text on every call; callers must pass the
// current document so consecutive builds do not collide.
func NextLetter(document string) byte {
	var highest byte
	for _, t := range FindTags(document) {
		if t.Set > highest {
			highest = t.Set
		}
	}
	if highest == 0 {
		return 'A'
	}
	return NextSetLetter(highest)
}
