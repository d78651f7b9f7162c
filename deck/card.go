package deck

import (
	"encoding/json"
	"fmt"
)

// Rank represents a card's value. Numbered ranks are their face value,
// court cards continue upwards (Jack is 11) and the top rank is 15.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Fifteen
	// Joker sits outside the numbered ranks. It is never compared by value
	// since it is always special.
	Joker
)

const (
	lowestRank  = Two
	highestRank = Fifteen
)

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"", "Clubs", "Diamonds", "Hearts", "Spades"}

const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	if s < NoSuit || int(s) >= len(suitNames) {
		return ""
	}
	return suitNames[s]
}

func (r Rank) String() string {
	if r == Joker {
		return "Joker"
	}
	return fmt.Sprintf("%d", int(r))
}

// Card is an immutable playing card.
// Two cards are alike for gameplay purposes when they share a Rank.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a suited card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// NewJoker constructs a suitless Joker
func NewJoker() Card {
	return Card{Rank: Joker, Suit: NoSuit}
}

// IsSpecial reports whether the card is a Two, a Ten or a Joker.
func (c Card) IsSpecial() bool {
	return c.Rank == Two || c.Rank == Ten || c.Rank == Joker
}

// IsSeven reports whether the card is a Seven.
func (c Card) IsSeven() bool {
	return c.Rank == Seven
}

// SameRank reports whether two cards share a rank. Suit is ignored.
func (c Card) SameRank(other Card) bool {
	return c.Rank == other.Rank
}

func (c Card) String() string {
	if c.Rank == Joker || c.Suit == NoSuit {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// MarshalJSON encodes the card as its descriptor, e.g. "10 of Hearts"
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Strings returns the descriptors of the given cards
func Strings(cards []Card) []string {
	s := make([]string, 0, len(cards))
	for _, c := range cards {
		s = append(s, c.String())
	}
	return s
}
