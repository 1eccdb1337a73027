package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrMissingTranslation is returned when a key lacks one of the language variants.
var ErrMissingTranslation = errors.New("missing translation")

//go:embed translations.yaml
var embeddedTranslations []byte

// Table maps translation keys to bilingual text. It is immutable after load.
type Table struct {
	entries map[string]Text
}

// Default loads the translation table compiled into the binary.
func Default() (*Table, error) {
	return Load(embeddedTranslations)
}

// Load parses a YAML document of `key: {ar: ..., en: ...}` entries and checks
// that every key has both language variants.
func Load(data []byte) (*Table, error) {
	entries := map[string]Text{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("parse translations: no entries")
	}
	t := &Table{entries: entries}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate returns an error naming every key with a missing language variant.
func (t *Table) Validate() error {
	var errs []error
	for _, key := range t.Keys() {
		e := t.entries[key]
		if e.AR == "" {
			errs = append(errs, fmt.Errorf("%w: %s[%s]", ErrMissingTranslation, key, Arabic))
		}
		if e.EN == "" {
			errs = append(errs, fmt.Errorf("%w: %s[%s]", ErrMissingTranslation, key, English))
		}
	}
	return errors.Join(errs...)
}

// T returns the text for key in lang. Unknown keys render as the key itself.
func (t *Table) T(key string, lang Language) string {
	e, ok := t.entries[key]
	if !ok {
		return key
	}
	return e.Get(lang)
}

// Lookup returns the bilingual entry for key.
func (t *Table) Lookup(key string) (Text, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Keys returns all keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
