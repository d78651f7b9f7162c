package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Lowest value card", NewCard(Two, Clubs), "2 of Clubs"},
		{"Court card", NewCard(Queen, Hearts), "12 of Hearts"},
		{"Highest value card", NewCard(Fifteen, Spades), "15 of Spades"},
		{"Joker", NewJoker(), "Joker"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.card.String())
		})
	}

	t.Run("special cards", func(t *testing.T) {
		for rank := Two; rank <= Fifteen; rank++ {
			c := NewCard(rank, Diamonds)
			assert.Equal(t, rank == Two || rank == Ten, c.IsSpecial(), c.String())
			assert.Equal(t, rank == Seven, c.IsSeven(), c.String())
		}
		assert.True(t, NewJoker().IsSpecial())
		assert.False(t, NewJoker().IsSeven())
	})

	t.Run("suit does not matter for rank comparisons", func(t *testing.T) {
		assert.True(t, NewCard(Nine, Clubs).SameRank(NewCard(Nine, Hearts)))
		assert.False(t, NewCard(Nine, Clubs).SameRank(NewCard(Eight, Clubs)))
	})

	t.Run("encodes as its descriptor", func(t *testing.T) {
		b, err := json.Marshal([]Card{NewCard(Ten, Hearts), NewJoker()})
		require.NoError(t, err)
		assert.Equal(t, `["10 of Hearts","Joker"]`, string(b))
	})
}
