package engine

import (
	"fmt"

	"github.com/minaorangina/canary/deck"
	"github.com/minaorangina/canary/protocol"
	"github.com/sirupsen/logrus"
)

// TraceObserver writes a human-readable account of the game to a logger
type TraceObserver struct {
	logger logrus.FieldLogger
}

func NewTraceObserver(logger logrus.FieldLogger) *TraceObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TraceObserver{logger: logger}
}

func (o *TraceObserver) OnRecord(protocol.TurnRecord) error {
	return nil
}

func (o *TraceObserver) OnEvents(gameID string, events []protocol.Event) {
	for _, ev := range events {
		entry := o.logger.WithFields(logrus.Fields{
			"game_id": gameID,
			"turn":    ev.Turn,
			"player":  ev.Player + 1,
			"action":  ev.Action.String(),
		})
		if len(ev.Cards) > 0 {
			entry = entry.WithField("cards", deck.Strings(ev.Cards))
		}
		if len(ev.Options) > 0 {
			entry = entry.WithField("playable", deck.Strings(ev.Options))
		}

		text := eventText(ev)
		switch ev.Action {
		case protocol.NoMoves:
			// only reachable if a finished player was given a turn
			entry.Warn(text)
		case protocol.TurnStarted, protocol.Draw:
			entry.Debug(text)
		default:
			entry.Info(text)
		}
	}
}

func eventText(ev protocol.Event) string {
	var card string
	if len(ev.Cards) > 0 {
		card = ev.Cards[0].String()
	}

	switch ev.Action {
	case protocol.StartingPlayer:
		return fmt.Sprintf("Player %d starts", ev.Player+1)
	case protocol.TurnStarted:
		return fmt.Sprintf("Player %d's turn", ev.Player+1)
	case protocol.PlayHand:
		return fmt.Sprintf("Played %s from hand.", card)
	case protocol.PlaySeen:
		return fmt.Sprintf("Played %s from face-up cards.", card)
	case protocol.PlayUnseen:
		return fmt.Sprintf("Played %s from face-down cards.", card)
	case protocol.UnseenFailure:
		return fmt.Sprintf("Turned over %s, which cannot be played.", card)
	case protocol.PickUp:
		return "Pile picked up!"
	case protocol.Reverse:
		return "Reversing Direction!"
	case protocol.PlayAgain:
		return "Play again"
	case protocol.ClearPile:
		return "Clearing play pile"
	case protocol.Draw:
		return fmt.Sprintf("Drew %d from the draw pile", len(ev.Cards))
	case protocol.Burn:
		return "4 in a row!"
	case protocol.NoMoves:
		return "No more cards to play."
	case protocol.PlayerFinished:
		return fmt.Sprintf("Player %d wins and is declared the Canary!", ev.Player+1)
	case protocol.GameOver:
		return "Game Over"
	}
	return ev.Action.String()
}
