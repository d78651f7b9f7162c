// Package records persists turn snapshots as a stream of concatenated JSON
// values and reads such streams back.
package records

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/minaorangina/canary/protocol"
)

// Writer appends turn records to an underlying stream, one JSON value each
type Writer struct {
	enc   *json.Encoder
	count int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Write appends a single record
func (w *Writer) Write(rec protocol.TurnRecord) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("could not write record for turn %d: %w", rec.TurnNumber, err)
	}
	w.count++
	return nil
}

// Count returns the number of records written so far
func (w *Writer) Count() int {
	return w.count
}

// Read decodes consecutive records until the end of the stream.
// It stops at the first value that is malformed or cut short and returns
// what it decoded before it. Only a failure to read from r is an error.
func Read(r io.Reader) ([]protocol.TurnRecord, error) {
	dec := json.NewDecoder(r)
	recs := []protocol.TurnRecord{}

	for {
		var rec protocol.TurnRecord
		err := dec.Decode(&rec)
		if err == nil {
			recs = append(recs, rec)
			continue
		}

		switch err.(type) {
		case *json.SyntaxError, *json.UnmarshalTypeError:
			return recs, nil
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return recs, nil
		}
		return recs, err
	}
}

// Totals returns, for each record, the number of cards each player holds
// across their hand, face-up and face-down zones
func Totals(recs []protocol.TurnRecord) [][]int {
	totals := make([][]int, 0, len(recs))
	for _, rec := range recs {
		row := make([]int, len(rec.NumCardsInHands))
		for player, n := range rec.NumCardsInHands {
			row[player] = n
			if player < len(rec.NumFaceUpCards) {
				row[player] += rec.NumFaceUpCards[player]
			}
			if player < len(rec.NumFaceDownCards) {
				row[player] += rec.NumFaceDownCards[player]
			}
		}
		totals = append(totals, row)
	}
	return totals
}

// AtTurn returns the first record for the given turn number
func AtTurn(recs []protocol.TurnRecord, turn int) (protocol.TurnRecord, bool) {
	for _, rec := range recs {
		if rec.TurnNumber == turn {
			return rec, true
		}
	}
	return protocol.TurnRecord{}, false
}

// HandJump is a hand that grew by more than the threshold in one turn
type HandJump struct {
	TurnNumber int
	Player     int
	Growth     int
	// Before holds the cards in the hand on the turn before it grew
	Before []string
}

// HandJumps finds every hand that grew by more than threshold cards from
// one record to the next, which in practice means a pile was picked up.
func HandJumps(recs []protocol.TurnRecord, threshold int) []HandJump {
	jumps := []HandJump{}
	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		for player := range cur.NumCardsInHands {
			if player >= len(prev.NumCardsInHands) || player >= len(prev.CardsInHands) {
				continue
			}
			growth := cur.NumCardsInHands[player] - prev.NumCardsInHands[player]
			if growth > threshold {
				jumps = append(jumps, HandJump{
					TurnNumber: cur.TurnNumber,
					Player:     player,
					Growth:     growth,
					Before:     prev.CardsInHands[player],
				})
			}
		}
	}
	return jumps
}

// CardCount is how often a card descriptor was seen
type CardCount struct {
	Card  string
	Count int
}

// CountCards tallies the cards held before each jump, most common first
func CountCards(jumps []HandJump) []CardCount {
	tally := map[string]int{}
	for _, j := range jumps {
		for _, c := range j.Before {
			tally[c]++
		}
	}

	counts := make([]CardCount, 0, len(tally))
	for card, n := range tally {
		counts = append(counts, CardCount{Card: card, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Card < counts[j].Card
	})
	return counts
}
