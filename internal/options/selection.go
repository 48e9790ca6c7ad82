package options

// Selection holds the diner's in-progress choices keyed by group name.
// Choices within a group keep the order they were picked in.
type Selection map[string][]Choice

// ValidationResult reports the single-type groups that still have no choice.
type ValidationResult struct {
	MissingGroups []string `json:"missing_groups"`
}

func (r ValidationResult) Valid() bool {
	return len(r.MissingGroups) == 0
}

// Validate checks a selection against the group cardinality rules: every
// single-type group needs exactly one choice, multiple-type groups accept any
// count. A single-type group with no choices authored is reported missing
// like any other, since it can never be satisfied.
func Validate(groups []OptionGroup, sel Selection) ValidationResult {
	var missing []string
	for _, g := range groups {
		if g.Type != Single {
			continue
		}
		if len(sel[g.Name]) == 0 {
			missing = append(missing, g.Name)
		}
	}
	return ValidationResult{MissingGroups: missing}
}

// SelectedOption is one resolved choice carried into the cart. Group is
// empty for choices from the generic legacy group so their labels render as
// the bare choice name.
type SelectedOption struct {
	Group string `json:"group,omitempty"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Label is the display form, "Group: Choice" or just the choice name.
func (o SelectedOption) Label() string {
	if o.Group == "" {
		return o.Name
	}
	return o.Group + ": " + o.Name
}

// Flatten resolves a validated selection into the options list stored on a
// cart item. Groups are visited in the order they appear on the product, not
// in selection-map order; within a group the pick order is kept. Choices
// from the synthesized legacy group (or a group named with the generic
// label) lose their group prefix.
func Flatten(groups []OptionGroup, sel Selection, legacyLabel string) []SelectedOption {
	if legacyLabel == "" {
		legacyLabel = DefaultLegacyLabel
	}
	flattened := []SelectedOption{}
	for _, g := range groups {
		generic := g.ID == LegacyGroupID || g.Name == legacyLabel || g.Name == DefaultLegacyLabel
		for _, c := range sel[g.Name] {
			opt := SelectedOption{Group: g.Name, Name: c.Name, Price: c.Price}
			if generic {
				opt.Group = ""
			}
			flattened = append(flattened, opt)
		}
	}
	return flattened
}
