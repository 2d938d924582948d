package setting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStringer struct {
	val string
}

func (m mockStringer) String() string {
	return m.val
}

func TestStringOptions(t *testing.T) {
	tests := []struct {
		name     string
		input    []fmt.Stringer
		expected []string
	}{
		{
			name:     "Empty slice",
			input:    []fmt.Stringer{},
			expected: []string{},
		},
		{
			name: "Multiple items",
			input: []fmt.Stringer{
				mockStringer{val: "Off"},
				mockStringer{val: "Every 6 Hours"},
			},
			expected: []string{"Off", "Every 6 Hours"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringOptions(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStringers(t *testing.T) {
	in := []mockStringer{{"a"}, {"b"}}
	assert.Equal(t, []string{"a", "b"}, StringOptions(Stringers(in)))
}

func TestNewToggleItem(t *testing.T) {
	var got []bool
	item := NewToggleItem("Auto-apply", true, func(b bool) { got = append(got, b) })
	assert.True(t, item.Checked)

	item.Action()
	assert.False(t, item.Checked)
	item.Action()
	assert.True(t, item.Checked)
	assert.Equal(t, []bool{false, true}, got)
}

func TestChoiceMenu(t *testing.T) {
	var picked []int
	options := []fmt.Stringer{mockStringer{"Off"}, mockStringer{"6h"}, mockStringer{"12h"}}
	cm := NewChoiceMenu("Auto Change", options, 0, func(i int) { picked = append(picked, i) })

	require.NotNil(t, cm.Item.ChildMenu)
	require.Len(t, cm.Item.ChildMenu.Items, 3)
	assert.Equal(t, "Auto Change", cm.Item.Label)
	assert.Equal(t, 0, cm.Selected())

	cm.Item.ChildMenu.Items[2].Action()
	assert.Equal(t, 2, cm.Selected())
	assert.False(t, cm.Item.ChildMenu.Items[0].Checked)
	assert.Equal(t, []int{2}, picked)

	cm.Select(7)
	assert.Equal(t, 2, cm.Selected())

	none := NewChoiceMenu("Cache", options, -1, nil)
	assert.Equal(t, -1, none.Selected())
}
