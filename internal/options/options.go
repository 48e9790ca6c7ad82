package options

import (
	"encoding/json"
)

// GroupType controls how many choices a diner may pick from a group.
type GroupType string

const (
	// Single requires exactly one choice from the group.
	Single GroupType = "single"
	// Multiple allows any number of choices, including none.
	Multiple GroupType = "multiple"
)

// Choice is one selectable value inside a group. Price is a delta added to
// the product's base unit price.
type Choice struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OptionGroup is a named set of choices attached to a product, e.g. "Size".
type OptionGroup struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Type    GroupType `json:"type"`
	Choices []Choice  `json:"choices"`
}

// FlatOption is the historical ungrouped shape: a bare named price delta.
// Products created before option groups existed still store this.
type FlatOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// LegacyGroupID marks the one group synthesized out of a flat option list.
const LegacyGroupID = "legacy-group"

// DefaultLegacyLabel is the English display name for the synthesized group.
// Callers pass a localized label where one is available.
const DefaultLegacyLabel = "Options"

// LegacyLabel returns the display name of the synthesized group for the
// storefront's supported locales.
func LegacyLabel(locale string) string {
	switch locale {
	case "ru":
		return "Опции"
	case "kz":
		return "Опциялар"
	default:
		return DefaultLegacyLabel
	}
}

// Normalize interprets a product's raw stored options column and returns the
// grouped representation. The column may hold null, the legacy flat list, or
// the current grouped shape; legacy data is migrated into a single
// multiple-type group named legacyLabel. Malformed payloads degrade to an
// empty result, never an error, and normalizing already-grouped data returns
// it unchanged, so the migration is idempotent.
func Normalize(raw []byte, legacyLabel string) []OptionGroup {
	if len(raw) == 0 || string(raw) == "null" {
		return []OptionGroup{}
	}
	if legacyLabel == "" {
		legacyLabel = DefaultLegacyLabel
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil || len(elements) == 0 {
		return []OptionGroup{}
	}

	if isLegacy(elements[0]) {
		var flat []FlatOption
		if err := json.Unmarshal(raw, &flat); err != nil {
			return []OptionGroup{}
		}
		choices := make([]Choice, len(flat))
		for i, o := range flat {
			choices[i] = Choice{Name: o.Name, Price: o.Price}
		}
		return []OptionGroup{{
			ID:      LegacyGroupID,
			Name:    legacyLabel,
			Type:    Multiple,
			Choices: choices,
		}}
	}

	var groups []OptionGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return []OptionGroup{}
	}
	for i := range groups {
		if groups[i].Choices == nil {
			groups[i].Choices = []Choice{}
		}
	}
	return groups
}

// isLegacy sniffs the first array element: an object carrying a "price"
// field and no "choices" field is taken to be the flat shape. This is the
// single place the ambiguous stored format is resolved.
func isLegacy(first json.RawMessage) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(first, &probe); err != nil {
		return false
	}
	_, hasPrice := probe["price"]
	_, hasChoices := probe["choices"]
	return hasPrice && !hasChoices
}
