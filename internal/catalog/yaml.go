package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLCatalog is the on-disk shape of a catalog file.
type YAMLCatalog struct {
	ID       string        `yaml:"id"`
	Title    string        `yaml:"title,omitempty"`
	Subtitle string        `yaml:"subtitle,omitempty"`
	Footer   string        `yaml:"footer,omitempty"`
	Theme    *YAMLTheme    `yaml:"theme,omitempty"`
	Sections []YAMLSection `yaml:"sections,omitempty"`
	Items    []YAMLItem    `yaml:"items"`
}

// YAMLTheme is the on-disk color theme.
type YAMLTheme struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Text       string `yaml:"text"`
}

// YAMLSection is the on-disk key section.
type YAMLSection struct {
	Name  string `yaml:"name"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

// YAMLItem is the on-disk item.
type YAMLItem struct {
	Order       int    `yaml:"order"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
}

// ParseYAML parses a catalog file. The result is not validated; call
// Validate before generating cards from it.
func ParseYAML(data []byte) (*Catalog, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	items := make([]Item, 0, len(yc.Items))
	for _, yi := range yc.Items {
		items = append(items, Item{
			Order:       yi.Order,
			Emoji:       yi.Emoji,
			Description: yi.Description,
		})
	}

	c := New(yc.ID, items)
	if yc.Title != "" {
		c.Title = yc.Title
	}
	c.Subtitle = yc.Subtitle
	c.Footer = yc.Footer
	if yc.Theme != nil {
		c.Theme = mergeTheme(c.Theme, *yc.Theme)
	}
	for _, ys := range yc.Sections {
		c.Sections = append(c.Sections, Section{Name: ys.Name, Start: ys.Start, End: ys.End})
	}
	return c, nil
}

// mergeTheme fills unset colors from base.
func mergeTheme(base Theme, yt YAMLTheme) Theme {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Theme{
		Primary:    pick(yt.Primary, base.Primary),
		Secondary:  pick(yt.Secondary, base.Secondary),
		Accent:     pick(yt.Accent, base.Accent),
		Background: pick(yt.Background, base.Background),
		Border:     pick(yt.Border, base.Border),
		Text:       pick(yt.Text, base.Text),
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
