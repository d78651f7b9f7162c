package game

import (
	"github.com/minaorangina/canary/deck"
	"github.com/minaorangina/canary/rng"
)

// startingOrder is the order in which ranks are looked for in players'
// hands. Ordinary low cards come first and the strong special cards last.
var startingOrder = []deck.Rank{
	deck.Three,
	deck.Four,
	deck.Five,
	deck.Six,
	deck.Seven,
	deck.Eight,
	deck.Nine,
	deck.Jack,
	deck.Queen,
	deck.King,
	deck.Ace,
	deck.Joker,
	deck.Ten,
	deck.Two,
}

// FindStartingPlayer returns the index of the player who opens the game.
// For each rank in startingOrder, the player holding the most cards of that
// rank starts; ties move on to the next rank. If nothing decides it, a
// random player starts.
func FindStartingPlayer(hands [][]deck.Card, src rng.Source) int {
	for _, rank := range startingOrder {
		best, bestCount, tied := -1, 0, false

		for playerIdx, hand := range hands {
			count := 0
			for _, c := range hand {
				if c.Rank == rank {
					count++
				}
			}

			switch {
			case count == 0:
			case count > bestCount:
				best, bestCount, tied = playerIdx, count, false
			case count == bestCount:
				tied = true
			}
		}

		if best >= 0 && !tied {
			return best
		}
	}

	return rng.UniformInt(src, 0, len(hands)-1)
}
