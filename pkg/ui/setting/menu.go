package setting

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// StringOptions converts a slice of fmt.Stringer to a slice of strings.
func StringOptions(options []fmt.Stringer) []string {
	stringOptions := []string{}
	for _, option := range options {
		stringOptions = append(stringOptions, option.String())
	}
	return stringOptions
}

// Stringers converts a typed slice to []fmt.Stringer.
func Stringers[T fmt.Stringer](options []T) []fmt.Stringer {
	out := make([]fmt.Stringer, 0, len(options))
	for _, o := range options {
		out = append(out, o)
	}
	return out
}

// NewToggleItem creates a checkable menu item. The item flips its own check mark
// before onToggle is called with the new state.
func NewToggleItem(label string, checked bool, onToggle func(bool)) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, nil)
	item.Checked = checked
	item.Action = func() {
		item.Checked = !item.Checked
		onToggle(item.Checked)
	}
	return item
}

// ChoiceMenu is a submenu in which exactly one option is checked.
type ChoiceMenu struct {
	Item     *fyne.MenuItem
	options  []*fyne.MenuItem
	onSelect func(int)
}

// NewChoiceMenu creates a submenu item labelled label with one entry per option.
// selected is the index checked initially; out of range checks nothing.
func NewChoiceMenu(label string, options []fmt.Stringer, selected int, onSelect func(int)) *ChoiceMenu {
	cm := &ChoiceMenu{onSelect: onSelect}
	for i, name := range StringOptions(options) {
		idx := i
		opt := fyne.NewMenuItem(name, func() { cm.Select(idx) })
		opt.Checked = idx == selected
		cm.options = append(cm.options, opt)
	}
	cm.Item = fyne.NewMenuItem(label, nil)
	cm.Item.ChildMenu = fyne.NewMenu(label, cm.options...)
	return cm
}

// Select checks option i and reports it to the callback.
func (cm *ChoiceMenu) Select(i int) {
	if i < 0 || i >= len(cm.options) {
		return
	}
	for j, opt := range cm.options {
		opt.Checked = j == i
	}
	if cm.onSelect != nil {
		cm.onSelect(i)
	}
}

// Selected returns the checked index, or -1.
func (cm *ChoiceMenu) Selected() int {
	for i, opt := range cm.options {
		if opt.Checked {
			return i
		}
	}
	return -1
}
