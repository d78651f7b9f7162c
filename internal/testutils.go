package internal

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/minaorangina/canary/deck"
)

var suitCodes = map[byte]deck.Suit{
	'C': deck.Clubs,
	'D': deck.Diamonds,
	'H': deck.Hearts,
	'S': deck.Spades,
}

// ParseCard builds a card from a short code: rank then an optional suit
// letter, e.g. "10H", "7C", "3". "JK" is a Joker.
func ParseCard(code string) (deck.Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "JK" {
		return deck.NewJoker(), nil
	}
	if code == "" {
		return deck.Card{}, fmt.Errorf("empty card code")
	}

	suit := deck.Spades
	if s, ok := suitCodes[code[len(code)-1]]; ok {
		suit = s
		code = code[:len(code)-1]
	}

	rank, err := strconv.Atoi(code)
	if err != nil {
		return deck.Card{}, fmt.Errorf("bad rank in card code %q: %w", code, err)
	}
	if rank < int(deck.Two) || rank > int(deck.Fifteen) {
		return deck.Card{}, fmt.Errorf("rank %d out of range", rank)
	}

	return deck.NewCard(deck.Rank(rank), suit), nil
}

// Cards parses card codes, failing the test on a bad code
func Cards(t *testing.T, codes ...string) []deck.Card {
	t.Helper()

	cards := make([]deck.Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err.Error())
		}
		cards = append(cards, c)
	}
	return cards
}

// ScriptedSource is an rng.Source that replays Values in order, wrapping
// each one into range. Shuffle leaves the order untouched.
type ScriptedSource struct {
	Values []int
	next   int
}

func (s *ScriptedSource) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return ((v % n) + n) % n
}

func (s *ScriptedSource) Shuffle(n int, swap func(i, j int)) {}

// Within fails the test if assert does not return within d
func Within(t *testing.T, d time.Duration, assert func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		assert()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Error("timed out")
	case <-done:
	}
}
