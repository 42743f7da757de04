package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/arcade-portfolio/navigation"
)

func TestLoadEmbedded(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "JaePyJs", p.Player.Name)
	assert.Len(t, p.Player.Stats, 5)
	assert.Len(t, p.Skills, 3)
	assert.Equal(t, 13, p.SkillCount())
	assert.Len(t, p.Projects, 3)
	assert.Len(t, p.HighScores, 5)
	assert.Len(t, p.Social, 3)

	require.Len(t, p.Levels, 4)
	want := []navigation.ScreenID{navigation.About, navigation.Skills, navigation.Projects, navigation.Contact}
	for i, l := range p.Levels {
		assert.Equal(t, want[i], l.Screen)
		assert.Equal(t, i+1, l.Number)
	}

	pr, ok := p.Project("recipe")
	require.True(t, ok)
	assert.Equal(t, "MIX AND MUNCH", pr.Title)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "stat out of range",
			doc:  "player: {name: x, stats: [{name: CODING, value: 120}]}",
			msg:  "out of range",
		},
		{
			name: "duplicate project",
			doc:  "player: {name: x}\nprojects: [{id: a, title: A}, {id: a, title: B}]",
			msg:  `duplicate project id "a"`,
		},
		{
			name: "untitled project",
			doc:  "player: {name: x}\nprojects: [{id: a}]",
			msg:  "has no title",
		},
		{
			name: "unknown screen",
			doc:  "player: {name: x}\nlevels: [{number: 1, screen: credits, title: C}]",
			msg:  "unknown screen",
		},
		{
			name: "not yaml",
			doc:  "player: [",
			msg:  "failed to decode portfolio",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0", FormatScore(0))
	assert.Equal(t, "999", FormatScore(999))
	assert.Equal(t, "5,500", FormatScore(5500))
	assert.Equal(t, "10,000", FormatScore(10000))
	assert.Equal(t, "1,234,567", FormatScore(1234567))
	assert.Equal(t, "-8,500", FormatScore(-8500))
}
