package card_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vovakirdan/bingo/internal/card"
)

// mapSource is a LabelSource backed by a map.
type mapSource map[int]string

func (m mapSource) Label(order int) (string, bool) {
	label, ok := m[order]
	return label, ok
}

func numbered(n int) mapSource {
	src := make(mapSource, n)
	for i := 1; i <= n; i++ {
		src[i] = fmt.Sprintf("item-%02d", i)
	}
	return src
}

func TestLabels(t *testing.T) {
	labels, err := card.Labels(sequentialGrid(), numbered(30))
	if err != nil {
		t.Fatalf("Labels() failed: %v", err)
	}
	if labels[0][0] != "item-01" {
		t.Errorf("expected item-01 at (0,0), got %q", labels[0][0])
	}
	if labels[4][4] != "item-25" {
		t.Errorf("expected item-25 at (4,4), got %q", labels[4][4])
	}
}

func TestLabelsMissingEntry(t *testing.T) {
	src := numbered(30)
	delete(src, 13)

	_, err := card.Labels(sequentialGrid(), src)
	if !errors.Is(err, card.ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}

	var le *card.LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LookupError, got %T", err)
	}
	if le.Value != 13 || le.Pos != card.P(2, 2) {
		t.Errorf("unexpected lookup error: %+v", le)
	}
}
