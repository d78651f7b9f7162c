package game

import "github.com/minaorangina/canary/deck"

const (
	minPlayers      = 2
	maxPlayers      = 8
	burnNum         = 4
	numCardsInGroup = 3
	// cards dealt per player to choose the face-up zone from
	numCandidates = 2 * numCardsInGroup
	// turn bound, as a multiple of the number of cards in play
	defaultMaxTurnsFactor = 100
)

// CanPlay reports whether candidate may be placed on pile.
// The most recently played card is the last element of pile.
func CanPlay(candidate deck.Card, pile []deck.Card) bool {
	// Can play any card on an empty pile
	if len(pile) == 0 {
		return true
	}

	top := pile[len(pile)-1]

	// A special card resets the pile
	if top.IsSpecial() {
		return true
	}

	// Special cards beat anything
	if candidate.IsSpecial() {
		return true
	}

	// Seven or below
	if top.IsSeven() {
		return candidate.Rank <= deck.Seven
	}

	return candidate.Rank >= top.Rank
}

// legalMoves returns the indices of the cards in toPlay that may be played
func legalMoves(pile, toPlay []deck.Card) []int {
	moves := []int{}
	for i, c := range toPlay {
		if CanPlay(c, pile) {
			moves = append(moves, i)
		}
	}
	return moves
}

// isBurn reports whether the topmost cards of the pile share a rank
func isBurn(pile []deck.Card) bool {
	if len(pile) < burnNum {
		return false
	}

	topCards := pile[len(pile)-burnNum:]
	for _, c := range topCards[:burnNum-1] {
		if !c.SameRank(topCards[burnNum-1]) {
			return false
		}
	}

	return true
}
