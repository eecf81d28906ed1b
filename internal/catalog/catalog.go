// Package catalog defines the themed item lists that bingo cards are drawn
// from. Items are keyed by their order 1..N, which is also the order in
// which they are called during a game.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item is a single event that can appear on a card.
type Item struct {
	Order       int
	Emoji       string
	Description string
}

// Section groups a contiguous run of items on the key page.
type Section struct {
	Name  string
	Start int // First order, inclusive
	End   int // Last order, inclusive
}

// Contains reports whether order falls inside the section.
func (s Section) Contains(order int) bool {
	return order >= s.Start && order <= s.End
}

// Theme holds the colors used when printing cards for a catalog.
// Values are CSS colors.
type Theme struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Border     string
	Text       string
}

// DefaultTheme is used when a catalog does not define its own colors.
func DefaultTheme() Theme {
	return Theme{
		Primary:    "#8B0000",
		Secondary:  "#228B22",
		Accent:     "#FFD700",
		Background: "#FFF8DC",
		Border:     "#8B4513",
		Text:       "#2F4F4F",
	}
}

// Catalog is an ordered list of items plus presentation metadata.
type Catalog struct {
	ID       string
	Title    string
	Subtitle string
	Footer   string
	Theme    Theme
	Sections []Section
	Items    []Item

	byOrder map[int]Item
}

// New builds a catalog and indexes its items. Items are sorted by order.
func New(id string, items []Item) *Catalog {
	c := &Catalog{
		ID:    id,
		Title: TitleFromID(id),
		Theme: DefaultTheme(),
		Items: append([]Item(nil), items...),
	}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	sort.SliceStable(c.Items, func(i, j int) bool {
		return c.Items[i].Order < c.Items[j].Order
	})
	c.byOrder = make(map[int]Item, len(c.Items))
	for _, it := range c.Items {
		c.byOrder[it.Order] = it
	}
}

// TitleFromID turns "meet_me_in_st_louis" into "Meet Me In St Louis".
func TitleFromID(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// Size returns the number of items, which is the total number of calls in
// a game.
func (c *Catalog) Size() int {
	return len(c.Items)
}

// Lookup returns the item with the given order.
func (c *Catalog) Lookup(order int) (Item, bool) {
	it, ok := c.byOrder[order]
	return it, ok
}

// Label returns the emoji label for an order. It lets a catalog project a
// card grid into labels.
func (c *Catalog) Label(order int) (string, bool) {
	it, ok := c.byOrder[order]
	if !ok {
		return "", false
	}
	return it.Emoji, true
}

// Validate checks that orders run exactly 1..N without gaps or duplicates,
// that every item has a label, and that sections stay in range.
func (c *Catalog) Validate(minItems int) error {
	if c.ID == "" {
		return fmt.Errorf("catalog: missing id")
	}
	if len(c.Items) < minItems {
		return fmt.Errorf("catalog %s: %d items, need at least %d", c.ID, len(c.Items), minItems)
	}

	seen := make(map[int]bool, len(c.Items))
	for _, it := range c.Items {
		if it.Order < 1 || it.Order > len(c.Items) {
			return fmt.Errorf("catalog %s: item order %d outside [1, %d]", c.ID, it.Order, len(c.Items))
		}
		if seen[it.Order] {
			return fmt.Errorf("catalog %s: duplicate item order %d", c.ID, it.Order)
		}
		seen[it.Order] = true
		if strings.TrimSpace(it.Emoji) == "" {
			return fmt.Errorf("catalog %s: item %d has no emoji", c.ID, it.Order)
		}
		if strings.TrimSpace(it.Description) == "" {
			return fmt.Errorf("catalog %s: item %d has no description", c.ID, it.Order)
		}
	}

	for _, s := range c.Sections {
		if s.Start < 1 || s.End > len(c.Items) || s.Start > s.End {
			return fmt.Errorf("catalog %s: section %q range %d-%d invalid", c.ID, s.Name, s.Start, s.End)
		}
	}
	return nil
}

// Group is a key section with its items.
type Group struct {
	Name  string
	Items []Item
}

// Groups returns items grouped by section for the key page. A catalog
// without sections yields a single unnamed group.
func (c *Catalog) Groups() []Group {
	if len(c.Sections) == 0 {
		return []Group{{Items: c.Items}}
	}

	groups := make([]Group, 0, len(c.Sections))
	for _, s := range c.Sections {
		g := Group{Name: s.Name}
		for _, it := range c.Items {
			if s.Contains(it.Order) {
				g.Items = append(g.Items, it)
			}
		}
		groups = append(groups, g)
	}
	return groups
}
