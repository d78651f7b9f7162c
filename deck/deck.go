package deck

import "github.com/minaorangina/canary/rng"

// Deck represents a deck of cards. Cards are dealt from the end.
type Deck []Card

const (
	numJokers = 2
	// doubleDeckPlayers is the player count from which two decks are used
	doubleDeckPlayers = 5
)

// New creates an unshuffled deck for the given number of players:
// 14 ranks in 4 suits plus two Jokers, doubled for larger games.
func New(numPlayers int) Deck {
	cards := single()
	if numPlayers >= doubleDeckPlayers {
		cards = append(cards, single()...)
	}
	return cards
}

func single() Deck {
	cards := make(Deck, 0, len(suits)*int(highestRank-lowestRank+1)+numJokers)
	for _, suit := range suits {
		for rank := lowestRank; rank <= highestRank; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	for i := 0; i < numJokers; i++ {
		cards = append(cards, NewJoker())
	}
	return cards
}

// Shuffle permutes the deck using the given random source
func (d Deck) Shuffle(src rng.Source) {
	rng.Shuffle(src, d)
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 {
		return []Card{}
	}
	if n > numCardsInDeck {
		n = numCardsInDeck
	}
	startingIndex := numCardsInDeck - n
	dealt := make([]Card, n)
	copy(dealt, (*d)[startingIndex:])
	*d = (*d)[:startingIndex]
	return dealt
}

// Draw removes the top card. ok is false if the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	dealt := d.Deal(1)
	return dealt[0], true
}

// Count returns how many of each card the deck holds
func Count(cards ...[]Card) map[Card]int {
	counts := map[Card]int{}
	for _, group := range cards {
		for _, c := range group {
			counts[c]++
		}
	}
	return counts
}
