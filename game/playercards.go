package game

import "github.com/minaorangina/canary/deck"

// PlayerCards holds one player's zones. Seen is the face-up zone and
// Unseen is the face-down zone.
type PlayerCards struct {
	Hand, Seen, Unseen []deck.Card
}

// NewPlayerCards copies the given zones into a new PlayerCards
func NewPlayerCards(hand, seen, unseen []deck.Card) *PlayerCards {
	return &PlayerCards{
		Hand:   copyCards(hand),
		Seen:   copyCards(seen),
		Unseen: copyCards(unseen),
	}
}

// Finished reports whether every zone is empty
func (pc *PlayerCards) Finished() bool {
	return len(pc.Hand) == 0 &&
		len(pc.Seen) == 0 &&
		len(pc.Unseen) == 0
}

// take removes the card at idx from zone and hands it to the caller
func take(zone *[]deck.Card, idx int) deck.Card {
	cards := *zone
	card := cards[idx]
	remaining := make([]deck.Card, 0, len(cards)-1)
	remaining = append(remaining, cards[:idx]...)
	remaining = append(remaining, cards[idx+1:]...)
	*zone = remaining
	return card
}

func copyCards(cards []deck.Card) []deck.Card {
	c := make([]deck.Card, len(cards))
	copy(c, cards)
	return c
}
