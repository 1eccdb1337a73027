// Package catalog holds the ordered, immutable list of consulting services
// shown on the landing page.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kayan-consulting/kayan/internal/i18n"
)

// ErrInvalidService is returned when a catalog entry fails validation.
var ErrInvalidService = errors.New("invalid service")

//go:embed services.yaml
var embeddedServices []byte

// ServiceItem is one offering of the brand.
type ServiceItem struct {
	ID          string        `yaml:"id"`
	Icon        string        `yaml:"icon"`
	Title       i18n.Text     `yaml:"title"`
	Description i18n.Text     `yaml:"description"`
	Details     i18n.TextList `yaml:"details"`
}

// Catalog is the ordered list of services.
type Catalog struct {
	items []ServiceItem
	index map[string]int
}

// Default loads the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(embeddedServices)
}

// Load parses a YAML list of services and validates it.
func Load(data []byte) (*Catalog, error) {
	var items []ServiceItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse services: %w", err)
	}
	return New(items)
}

// New builds a catalog from items, rejecting duplicate ids and entries
// missing a language variant.
func New(items []ServiceItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidService)
	}
	c := &Catalog{items: items, index: make(map[string]int, len(items))}
	var errs []error
	for i, item := range items {
		if item.ID == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d has no id", ErrInvalidService, i))
			continue
		}
		if _, dup := c.index[item.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalidService, item.ID))
			continue
		}
		c.index[item.ID] = i
		if !item.Title.Complete() {
			errs = append(errs, fmt.Errorf("%w: %s title needs both languages", ErrInvalidService, item.ID))
		}
		if !item.Description.Complete() {
			errs = append(errs, fmt.Errorf("%w: %s description needs both languages", ErrInvalidService, item.ID))
		}
		if len(item.Details.AR) == 0 || len(item.Details.AR) != len(item.Details.EN) {
			errs = append(errs, fmt.Errorf("%w: %s details must be non-empty and paired", ErrInvalidService, item.ID))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Items returns the services in display order.
func (c *Catalog) Items() []ServiceItem {
	out := make([]ServiceItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of services.
func (c *Catalog) Len() int { return len(c.items) }

// At returns the service at position i.
func (c *Catalog) At(i int) ServiceItem { return c.items[i] }

// Lookup finds a service by id.
func (c *Catalog) Lookup(id string) (ServiceItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return ServiceItem{}, false
	}
	return c.items[i], true
}

// Titles returns every service title in lang, in display order.
func (c *Catalog) Titles(lang i18n.Language) []string {
	out := make([]string, len(c.items))
	for i, item := range c.items {
		out[i] = item.Title.Get(lang)
	}
	return out
}
