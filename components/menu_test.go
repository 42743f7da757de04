package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuMoveWraps(t *testing.T) {
	m := MenuData{Count: 4}
	m.Move(-1)
	assert.Equal(t, 3, m.SelectedIndex)
	m.Move(1)
	assert.Equal(t, 0, m.SelectedIndex)
	m.Move(2)
	m.Move(2)
	assert.Equal(t, 0, m.SelectedIndex)
	m.Move(-6)
	assert.Equal(t, 2, m.SelectedIndex)

	empty := MenuData{}
	empty.Move(1)
	assert.Equal(t, 0, empty.SelectedIndex)
}
