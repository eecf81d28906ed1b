package card

// LabelSource maps an item order to its display label.
type LabelSource interface {
	Label(order int) (string, bool)
}

// Labels projects g into display labels. Every value must have an entry in
// src; a missing entry means the card and catalog disagree on the universe
// and is reported as a *LookupError.
func Labels(g Grid, src LabelSource) ([Size][Size]string, error) {
	var out [Size][Size]string
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			label, ok := src.Label(g[r][c])
			if !ok {
				return out, &LookupError{Value: g[r][c], Pos: P(r, c)}
			}
			out[r][c] = label
		}
	}
	return out, nil
}
