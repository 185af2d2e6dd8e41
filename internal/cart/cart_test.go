package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamtimber/shop/internal/models"
)

func product(id int, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: price}
}

func TestAdd_AccumulatesQuantityPerProduct(t *testing.T) {
	t.Parallel()

	c := New()
	teak := product(1, "Zambezi Teak", 850)

	m, err := c.Add(teak, 2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, m.Outcome)
	require.NotNil(t, m.Item)
	assert.Equal(t, 2, m.Item.Quantity)

	m, err = c.Add(teak, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, m.Outcome)
	require.NotNil(t, m.Item)
	assert.Equal(t, 5, m.Item.Quantity)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.Count())
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	c := New()
	for _, q := range []int{0, -1, -100} {
		_, err := c.Add(product(1, "Mukwa", 720), q)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Equal(t, 0, c.Len())
}

func TestUpdateQuantity_BelowOneRemovesLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero", quantity: 0},
		{name: "negative", quantity: -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New()
			_, err := c.Add(product(1, "Mukwa", 720), 4)
			require.NoError(t, err)

			m, ok := c.UpdateQuantity(1, tt.quantity)
			require.True(t, ok)
			assert.Equal(t, OutcomeRemoved, m.Outcome)
			require.NotNil(t, m.Item)
			assert.Equal(t, "Mukwa", m.Item.Name)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestUpdateQuantity_OverwritesNotIncrements(t *testing.T) {
	t.Parallel()

	c := New()
	_, err := c.Add(product(1, "Mukwa", 720), 4)
	require.NoError(t, err)

	m, ok := c.UpdateQuantity(1, 2)
	require.True(t, ok)
	assert.Equal(t, OutcomeUpdated, m.Outcome)
	assert.Equal(t, 2, m.Item.Quantity)
	assert.Equal(t, 2, c.Count())
}

func TestUpdateQuantity_MissingProductProducesNoMutation(t *testing.T) {
	t.Parallel()

	c := New()
	m, ok := c.UpdateQuantity(99, 3)
	assert.False(t, ok)
	assert.Empty(t, m.Outcome)
	assert.Nil(t, m.Item)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c := New()
	_, err := c.Add(product(1, "Zambezi Teak", 850), 1)
	require.NoError(t, err)
	_, err = c.Add(product(2, "African Pine", 320), 2)
	require.NoError(t, err)

	m, ok := c.Remove(1)
	require.True(t, ok)
	assert.Equal(t, OutcomeRemoved, m.Outcome)
	assert.Equal(t, "Zambezi Teak", m.Item.Name)
	assert.Equal(t, 1, c.Len())

	_, ok = c.Remove(1)
	assert.False(t, ok, "second remove is a no-op")
}

func TestTotal_RecomputedAfterEveryMutation(t *testing.T) {
	t.Parallel()

	c := New()

	_, err := c.Add(product(1, "Zambezi Teak", 850), 2)
	require.NoError(t, err)
	assert.InDelta(t, 1700, c.Total(), 1e-9)

	_, err = c.Add(product(2, "African Pine", 320), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2020, c.Total(), 1e-9)

	_, ok := c.UpdateQuantity(1, 1)
	require.True(t, ok)
	assert.InDelta(t, 1170, c.Total(), 1e-9)

	_, ok = c.Remove(2)
	require.True(t, ok)
	assert.InDelta(t, 850, c.Total(), 1e-9)

	c.Clear()
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())
}

func TestClear_AlwaysReportsCleared(t *testing.T) {
	t.Parallel()

	c := New()
	m := c.Clear()
	assert.Equal(t, OutcomeCleared, m.Outcome)
	assert.Nil(t, m.Item)

	_, err := c.Add(product(1, "Mukwa", 720), 3)
	require.NoError(t, err)
	m = c.Clear()
	assert.Equal(t, OutcomeCleared, m.Outcome)
	assert.Empty(t, c.Items())
}

func TestItems_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	c := New()
	for i, name := range []string{"Mukwa", "Zambezi Teak", "African Pine"} {
		_, err := c.Add(product(i+1, name, 100), 1)
		require.NoError(t, err)
	}

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Mukwa", items[0].Name)
	assert.Equal(t, "Zambezi Teak", items[1].Name)
	assert.Equal(t, "African Pine", items[2].Name)
}
