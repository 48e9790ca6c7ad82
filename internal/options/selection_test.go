package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sizeGroup() OptionGroup {
	return OptionGroup{
		Name: "Size",
		Type: Single,
		Choices: []Choice{
			{Name: "S", Price: 0},
			{Name: "M", Price: 500},
			{Name: "L", Price: 1000},
		},
	}
}

func addonsGroup() OptionGroup {
	return OptionGroup{
		Name: "Add-ons",
		Type: Multiple,
		Choices: []Choice{
			{Name: "Cheese", Price: 300},
			{Name: "Bacon", Price: 400},
		},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name            string
		groups          []OptionGroup
		sel             Selection
		expectedMissing []string
	}{
		{
			name:            "no groups",
			groups:          nil,
			sel:             Selection{},
			expectedMissing: nil,
		},
		{
			name:            "single group unselected",
			groups:          []OptionGroup{sizeGroup()},
			sel:             Selection{},
			expectedMissing: []string{"Size"},
		},
		{
			name:            "single group satisfied",
			groups:          []OptionGroup{sizeGroup()},
			sel:             Selection{"Size": {{Name: "M", Price: 500}}},
			expectedMissing: nil,
		},
		{
			name:            "multiple group never required",
			groups:          []OptionGroup{addonsGroup()},
			sel:             Selection{},
			expectedMissing: nil,
		},
		{
			name:   "mixed groups report only unselected singles",
			groups: []OptionGroup{sizeGroup(), addonsGroup(), {Name: "Sauce", Type: Single, Choices: []Choice{{Name: "BBQ"}}}},
			sel: Selection{
				"Add-ons": {{Name: "Cheese", Price: 300}},
			},
			expectedMissing: []string{"Size", "Sauce"},
		},
		{
			name:            "single group with no authored choices is still required",
			groups:          []OptionGroup{{Name: "Broken", Type: Single, Choices: []Choice{}}},
			sel:             Selection{},
			expectedMissing: []string{"Broken"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(tc.groups, tc.sel)
			assert.Equal(t, tc.expectedMissing, result.MissingGroups)
			assert.Equal(t, len(tc.expectedMissing) == 0, result.Valid())
		})
	}
}

func TestValidateSelectingResolvesMissing(t *testing.T) {
	groups := []OptionGroup{sizeGroup()}

	result := Validate(groups, Selection{})
	assert.Contains(t, result.MissingGroups, "Size")

	result = Validate(groups, Selection{"Size": {{Name: "S"}}})
	assert.True(t, result.Valid())
}

func TestFlatten(t *testing.T) {
	groups := []OptionGroup{sizeGroup(), addonsGroup()}

	sel := Selection{
		// Insertion order of the map must not matter; output follows
		// group order on the product.
		"Add-ons": {{Name: "Bacon", Price: 400}, {Name: "Cheese", Price: 300}},
		"Size":    {{Name: "M", Price: 500}},
	}

	got := Flatten(groups, sel, "")
	assert.Equal(t, []SelectedOption{
		{Group: "Size", Name: "M", Price: 500},
		{Group: "Add-ons", Name: "Bacon", Price: 400},
		{Group: "Add-ons", Name: "Cheese", Price: 300},
	}, got)
}

func TestFlattenLegacyGroupDropsPrefix(t *testing.T) {
	groups := Normalize([]byte(`[{"name":"Extra shot","price":200}]`), "Опции")
	sel := Selection{"Опции": {{Name: "Extra shot", Price: 200}}}

	got := Flatten(groups, sel, "Опции")
	assert.Equal(t, []SelectedOption{{Group: "", Name: "Extra shot", Price: 200}}, got)
	assert.Equal(t, "Extra shot", got[0].Label())
}

func TestFlattenEmptySelection(t *testing.T) {
	got := Flatten([]OptionGroup{sizeGroup()}, Selection{}, "")
	assert.Empty(t, got)
}

func TestSelectedOptionLabel(t *testing.T) {
	assert.Equal(t, "Size: M", SelectedOption{Group: "Size", Name: "M"}.Label())
	assert.Equal(t, "Extra shot", SelectedOption{Name: "Extra shot"}.Label())
}
