package records

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/minaorangina/canary/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func someRecords() []protocol.TurnRecord {
	return []protocol.TurnRecord{
		{
			TurnNumber:       1,
			NumCardsInHands:  []int{3, 3},
			NumFaceUpCards:   []int{3, 3},
			NumFaceDownCards: []int{3, 3},
			CardsInHands:     [][]string{{"3 of Hearts", "4 of Clubs", "Joker"}, {"9 of Spades", "9 of Clubs", "12 of Hearts"}},
			Direction:        1,
		},
		{
			TurnNumber:       2,
			NumCardsInHands:  []int{3, 7},
			NumFaceUpCards:   []int{3, 3},
			NumFaceDownCards: []int{3, 3},
			CardsInHands:     [][]string{{"3 of Hearts", "4 of Clubs", "5 of Clubs"}, {"9 of Spades", "9 of Clubs", "12 of Hearts", "a", "b", "c", "d"}},
			CurrentPlayer:    1,
			Direction:        1,
		},
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestWriteThenRead(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	for _, rec := range someRecords() {
		require.NoError(t, w.Write(rec))
	}
	assert.Equal(t, 2, w.Count())

	t.Run("records are separate top level values", func(t *testing.T) {
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], `{"turn_number":1,"num_cards_in_hands":[3,3]`))
	})

	got, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, someRecords(), got)
}

func TestRead(t *testing.T) {
	t.Run("values may be packed or spaced out", func(t *testing.T) {
		stream := `{"turn_number":1}{"turn_number":2}` + "\n\t \r\n" + `{"turn_number":3}   `
		got, err := Read(strings.NewReader(stream))
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 3, got[2].TurnNumber)
	})

	t.Run("stops at a partial value", func(t *testing.T) {
		stream := `{"turn_number":1}` + "\n" + `{"turn_number":2,"num_cards_in`
		got, err := Read(strings.NewReader(stream))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("stops at a malformed value", func(t *testing.T) {
		stream := `{"turn_number":1} garbage {"turn_number":3}`
		got, err := Read(strings.NewReader(stream))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty stream", func(t *testing.T) {
		got, err := Read(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("read failures are reported", func(t *testing.T) {
		_, err := Read(failingReader{})
		assert.Error(t, err)
	})
}

func TestTotals(t *testing.T) {
	assert.Equal(t, [][]int{{9, 9}, {9, 13}}, Totals(someRecords()))
	assert.Empty(t, Totals(nil))

	t.Run("missing zone counts are treated as empty", func(t *testing.T) {
		recs := []protocol.TurnRecord{{NumCardsInHands: []int{2, 5}, NumFaceUpCards: []int{1}}}
		assert.Equal(t, [][]int{{3, 5}}, Totals(recs))
	})
}

func TestAtTurn(t *testing.T) {
	rec, ok := AtTurn(someRecords(), 2)
	require.True(t, ok)
	assert.Equal(t, []int{3, 7}, rec.NumCardsInHands)

	_, ok = AtTurn(someRecords(), 3)
	assert.False(t, ok)
}

func TestHandJumps(t *testing.T) {
	jumps := HandJumps(someRecords(), 2)
	require.Len(t, jumps, 1)
	assert.Equal(t, HandJump{
		TurnNumber: 2,
		Player:     1,
		Growth:     4,
		Before:     []string{"9 of Spades", "9 of Clubs", "12 of Hearts"},
	}, jumps[0])

	assert.Empty(t, HandJumps(someRecords(), 4))

	counts := CountCards(append(jumps, jumps[0]))
	assert.Equal(t, []CardCount{
		{"12 of Hearts", 2},
		{"9 of Clubs", 2},
		{"9 of Spades", 2},
	}, counts)
}
