package viewer

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/city-viewer/internal/model"
)

func TestSelectionControl_Options(t *testing.T) {
	cat := newTestCatalog(t)
	s := NewViewState(cat)
	c := NewSelectionControl(cat, s)

	assert.Equal(t, []Option{
		{Name: "New York", Selected: true},
		{Name: "San Francisco", Selected: false},
	}, c.Options())
	assert.Equal(t, "New York", c.Current())
}

func TestSelectionControl_ReflectsExternalChange(t *testing.T) {
	cat := newTestCatalog(t)
	s := NewViewState(cat)
	c := NewSelectionControl(cat, s)

	require.NoError(t, s.SelectName("San Francisco"))

	assert.Equal(t, "San Francisco", c.Current())
	assert.True(t, c.Options()[1].Selected)
	assert.False(t, c.Options()[0].Selected)
}

func TestSelectionControl_OneMutationPerChoice(t *testing.T) {
	cat := newTestCatalog(t)
	s := NewViewState(cat)
	c := NewSelectionControl(cat, s)

	var seen []string
	s.Subscribe(func(_, next *model.City) { seen = append(seen, next.Name) })

	require.NoError(t, c.Choose("San Francisco"))
	require.NoError(t, c.Choose("New York"))
	require.NoError(t, c.Choose("San Francisco"))

	assert.Equal(t, []string{"San Francisco", "New York", "San Francisco"}, seen)
}

func TestSelectionControl_ChooseIndex(t *testing.T) {
	cat := newTestCatalog(t)
	s := NewViewState(cat)
	c := NewSelectionControl(cat, s)

	require.NoError(t, c.ChooseIndex(2))
	assert.Equal(t, "San Francisco", c.Current())

	for _, pos := range []int{0, 3, -1} {
		err := c.ChooseIndex(pos)
		require.Error(t, err)
		assert.True(t, eris.Is(err, ErrInvalidSelection))
	}
	assert.Equal(t, "San Francisco", c.Current())
}

func TestSelectionControl_ChooseUnknown(t *testing.T) {
	cat := newTestCatalog(t)
	s := NewViewState(cat)
	c := NewSelectionControl(cat, s)

	err := c.Choose("Atlantis")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidSelection))
	assert.Equal(t, "New York", c.Current())
}

func TestSelectionControl_Contains(t *testing.T) {
	cat := newTestCatalog(t)
	c := NewSelectionControl(cat, NewViewState(cat))

	assert.True(t, c.Contains("San Francisco"))
	assert.False(t, c.Contains("Atlantis"))
}
