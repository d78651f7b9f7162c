package game

import (
	"github.com/minaorangina/canary/deck"
	"github.com/minaorangina/canary/protocol"
)

// snapshot records the size of every player's zones and the contents of
// their hands at the end of a turn
func (s *Shed) snapshot(t *turn) protocol.TurnRecord {
	n := len(s.PlayerCards)
	rec := protocol.TurnRecord{
		TurnNumber:       t.number,
		NumCardsInHands:  make([]int, 0, n),
		NumFaceUpCards:   make([]int, 0, n),
		NumFaceDownCards: make([]int, 0, n),
		CardsInHands:     make([][]string, 0, n),
		CurrentPlayer:    t.player,
		Direction:        s.Direction,
		PileSize:         len(s.Pile),
		DrawPileSize:     len(s.Deck),
	}

	for _, pc := range s.PlayerCards {
		rec.NumCardsInHands = append(rec.NumCardsInHands, len(pc.Hand))
		rec.NumFaceUpCards = append(rec.NumFaceUpCards, len(pc.Seen))
		rec.NumFaceDownCards = append(rec.NumFaceDownCards, len(pc.Unseen))
		rec.CardsInHands = append(rec.CardsInHands, deck.Strings(pc.Hand))
	}

	return rec
}
