package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// LocalizedText maps a locale code to a display string ({"en": "Manicure", "ru": "Маникюр"})
type LocalizedText map[string]string

// Pick returns the text for the locale with the fallback chain
// requested -> en -> ru -> first present (by key order); empty map gives ""
func (t LocalizedText) Pick(locale string) string {
	if len(t) == 0 {
		return ""
	}
	for _, l := range []string{locale, LocaleEN, LocaleRU} {
		if v, ok := t[l]; ok {
			return v
		}
	}

	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return t[keys[0]]
}

// Scan implements sql.Scanner for jsonb columns
func (t *LocalizedText) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("localized text: cannot scan %T", src)
	}

	m := make(map[string]string)
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("localized text: %w", err)
	}
	*t = m
	return nil
}
