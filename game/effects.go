package game

import (
	"github.com/minaorangina/canary/deck"
	"github.com/minaorangina/canary/protocol"
)

// commit places card on the pile and applies its effect.
// The card must already have been taken from its zone.
func (s *Shed) commit(t *turn, card deck.Card) {
	s.Pile = append(s.Pile, card)

	switch card.Rank {
	case deck.Joker:
		s.Direction *= -1
		t.add(protocol.Reverse)

	case deck.Ten:
		cleared := s.clearPile()
		t.add(protocol.ClearPile, cleared...)
	}

	s.refillHand(t)

	if card.Rank == deck.Two {
		// step back so that passing play on lands on the same player
		s.CurrentTurnIdx = s.offset(s.CurrentTurnIdx, -s.Direction)
		t.add(protocol.PlayAgain)
	}
}

// pickUpPile moves the whole pile into the current player's hand
func (s *Shed) pickUpPile(t *turn) {
	pc := s.PlayerCards[t.player]
	picked := s.Pile
	pc.Hand = append(pc.Hand, picked...)
	s.Pile = []deck.Card{}
	t.add(protocol.PickUp, picked...)
}

// drawCard moves the top of the draw pile into the player's hand.
// Drawing from an empty draw pile does nothing.
func (s *Shed) drawCard(playerIdx int) (deck.Card, bool) {
	card, ok := s.Deck.Draw()
	if !ok {
		return deck.Card{}, false
	}
	pc := s.PlayerCards[playerIdx]
	pc.Hand = append(pc.Hand, card)
	return card, true
}

// refillHand draws until the hand holds three cards or the draw pile runs out
func (s *Shed) refillHand(t *turn) {
	drawn := []deck.Card{}
	for len(s.PlayerCards[t.player].Hand) < numCardsInGroup {
		card, ok := s.drawCard(t.player)
		if !ok {
			break
		}
		drawn = append(drawn, card)
	}

	if len(drawn) > 0 {
		t.add(protocol.Draw, drawn...)
	}
}

// clearPile empties the pile, removing its cards from the game
func (s *Shed) clearPile() []deck.Card {
	cleared := s.Pile
	s.Burned = append(s.Burned, cleared...)
	s.Pile = []deck.Card{}
	return cleared
}
