package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	emojis := []string{"🎄", "🎁", "⛄", "🔔", "🕯"}
	items := make([]catalog.Item, 30)
	for i := range items {
		items[i] = catalog.Item{
			Order:       i + 1,
			Emoji:       emojis[i%len(emojis)],
			Description: "Event <" + string(rune('A'+i%26)) + ">",
		}
	}
	c := catalog.New("holiday_test", items)
	c.Subtitle = "Snow & Song"
	c.Sections = []catalog.Section{
		{Name: "Early", Start: 1, End: 15},
		{Name: "Late", Start: 16, End: 30},
	}
	if err := c.Validate(card.MinTotalItems); err != nil {
		t.Fatal(err)
	}
	return c
}

func testCards(t *testing.T, n int) []card.Card {
	t.Helper()
	cards, err := card.GenerateBatch(42, card.DefaultGenParams(), n)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}

func TestCardsHTML(t *testing.T) {
	c := testCatalog(t)
	cards := testCards(t, 3)

	var buf bytes.Buffer
	err := CardsHTML(&buf, c, cards, HTMLOptions{
		IncludeKey: true,
		Snowflakes: 12,
		Rand:       card.NewRNG(1),
	})
	if err != nil {
		t.Fatalf("CardsHTML: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, `<div class="card-page">`); got != 3 {
		t.Errorf("card pages = %d, want 3", got)
	}
	if got := strings.Count(out, `<div class="bingo-cell">`); got != 3*card.Size*card.Size {
		t.Errorf("cells = %d, want %d", got, 3*card.Size*card.Size)
	}
	if got := strings.Count(out, `class="snowflake"`); got != 36 {
		t.Errorf("snowflakes = %d, want 36", got)
	}
	if !strings.Contains(out, `<div class="key-page">`) {
		t.Error("missing key page")
	}
	if got := strings.Count(out, `<div class="key-item">`); got != 30 {
		t.Errorf("key items = %d, want 30", got)
	}
	for _, want := range []string{"Holiday Test", "Snow &amp; Song", "Event &lt;A&gt;", cards[0].Serial, c.Theme.Primary, "Early", "Late"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "ZgotmplZ") {
		t.Error("template rejected a value")
	}
}

func TestCardsHTMLDeterministic(t *testing.T) {
	c := testCatalog(t)
	cards := testCards(t, 2)

	render := func() string {
		var buf bytes.Buffer
		opts := HTMLOptions{Snowflakes: 5, Rand: card.NewRNG(9)}
		if err := CardsHTML(&buf, c, cards, opts); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}
	if render() != render() {
		t.Error("same seed produced different documents")
	}
}

func TestCardsHTMLWithoutKey(t *testing.T) {
	c := testCatalog(t)

	var buf bytes.Buffer
	if err := CardsHTML(&buf, c, testCards(t, 1), HTMLOptions{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `<div class="key-page">`) {
		t.Error("key page rendered without IncludeKey")
	}
	if strings.Contains(buf.String(), `class="snowflake"`) {
		t.Error("snowflakes rendered without Rand")
	}
}

func TestCardsHTMLUnknownItem(t *testing.T) {
	small := catalog.New("small", testCatalog(t).Items[:25])
	cards := testCards(t, 1) // values drawn from 1..30

	err := CardsHTML(&bytes.Buffer{}, small, cards, HTMLOptions{})
	needs := false
	for _, v := range cards[0].Grid.Values() {
		if v > 25 {
			needs = true
		}
	}
	if !needs {
		t.Skip("card happens to use only items 1..25")
	}
	if !errors.Is(err, card.ErrUnknownItem) {
		t.Fatalf("err = %v, want ErrUnknownItem", err)
	}
}

func TestKeyHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := KeyHTML(&buf, testCatalog(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, `<div class="card-page">`) {
		t.Error("key document contains card pages")
	}
	if !strings.Contains(out, "Reference guide for all 30 events") {
		t.Error("missing key subtitle")
	}
}

func TestIntroHTML(t *testing.T) {
	src := []byte("# Welcome\n\nGrab a **card** and watch.\n\n- one\n- two\n\n<script>alert(1)</script>\n")

	var buf bytes.Buffer
	if err := IntroHTML(&buf, src, "", catalog.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<h1>Welcome</h1>", "<strong>card</strong>", "<li>one</li>", "<title>Introduction</title>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("raw html passed through")
	}
}

func TestCardText(t *testing.T) {
	c := testCatalog(t)
	crd := testCards(t, 1)[0]

	called := card.NewCalledSet()
	for i := 1; i <= crd.WinAt; i++ {
		called.Add(i)
	}

	out, err := CardText(c, crd, called, NewTextTheme(c.Theme))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Holiday Test") {
		t.Error("missing title")
	}
	if !strings.Contains(out, crd.Serial) {
		t.Error("missing serial")
	}
	if got := strings.Count(out, "\n"); got < card.Size*2 {
		t.Errorf("only %d lines rendered", got)
	}
}

func TestPlainCardAndKey(t *testing.T) {
	c := testCatalog(t)
	crd := testCards(t, 1)[0]

	out, err := PlainCard(c, crd)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != card.Size+1 {
		t.Fatalf("lines = %d, want %d", len(lines), card.Size+1)
	}
	for _, l := range lines[1:] {
		if got := strings.Count(l, "\t"); got != card.Size-1 {
			t.Errorf("row %q has %d tabs", l, got)
		}
	}

	key := PlainKey(c)
	if !strings.Contains(key, "[Early]") || !strings.Contains(key, "30  ") {
		t.Errorf("unexpected key:\n%s", key)
	}
	if !strings.Contains(KeyText(c, NewTextTheme(c.Theme)), "Event <A>") {
		t.Error("styled key missing description")
	}
}
