package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	s := NewSelection()
	s.Observe([]string{"b", "a", "c"})

	s.ToggleAll([]string{"a", "b"}, true)
	assert.Equal(t, []string{"a", "b"}, s.SelectedIDs())
	assert.True(t, s.AllSelected([]string{"a", "b"}))
	assert.False(t, s.AllSelected([]string{"a", "b", "c"}))
	assert.False(t, s.AllSelected(nil))

	s.ToggleOne("a", false)
	assert.False(t, s.IsSelected("a"))
	assert.Equal(t, []string{"b"}, s.SelectedIDs())

	s.ToggleOne("zzz", true)
	assert.False(t, s.IsSelected("zzz"))

	assert.Equal(t, []string{"c", "b"}, s.Known([]string{"c", "x", "b"}))

	s.Clear()
	assert.Empty(t, s.SelectedIDs())
	s.ToggleOne("c", true)
	assert.Equal(t, []string{"c"}, s.SelectedIDs())
}
