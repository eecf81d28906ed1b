package card

// FirstBingo calls items 1..totalItems in order and returns the call number
// at which g first completes a line. ok is false if no line completes.
func FirstBingo(g Grid, totalItems int) (call int, ok bool) {
	called := NewCalledSet()
	for n := 1; n <= totalItems; n++ {
		called.Add(n)
		if CheckBingo(g, called) {
			return n, true
		}
	}
	return 0, false
}

// Simulate returns the call number at which g first completes a line when
// items are called in order. If nothing completes it returns totalItems;
// use FirstBingo to tell that case apart.
func Simulate(g Grid, totalItems int) int {
	if n, ok := FirstBingo(g, totalItems); ok {
		return n
	}
	return totalItems
}
