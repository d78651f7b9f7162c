package protocol

import (
	"fmt"

	"github.com/minaorangina/canary/deck"
)

// Action identifies something that happened during a turn
type Action int

const (
	Null Action = iota
	StartingPlayer
	TurnStarted
	PlayHand   // when a player plays a card from their hand
	PlaySeen   // when a player plays a card from their face-up cards
	PlayUnseen // when a player turns over a face-down card that can be played
	UnseenFailure
	PickUp
	Reverse
	PlayAgain
	ClearPile
	Draw
	Burn
	NoMoves
	PlayerFinished
	GameOver
)

var ActionNames = map[Action]string{
	Null:           "Null",
	StartingPlayer: "StartingPlayer",
	TurnStarted:    "TurnStarted",
	PlayHand:       "PlayHand",
	PlaySeen:       "PlaySeen",
	PlayUnseen:     "PlayUnseen",
	UnseenFailure:  "UnseenFailure",
	PickUp:         "PickUp",
	Reverse:        "Reverse",
	PlayAgain:      "PlayAgain",
	ClearPile:      "ClearPile",
	Draw:           "Draw",
	Burn:           "Burn",
	NoMoves:        "NoMoves",
	PlayerFinished: "PlayerFinished",
	GameOver:       "GameOver",
}

var NameToAction = map[string]Action{
	"Null":           Null,
	"StartingPlayer": StartingPlayer,
	"TurnStarted":    TurnStarted,
	"PlayHand":       PlayHand,
	"PlaySeen":       PlaySeen,
	"PlayUnseen":     PlayUnseen,
	"UnseenFailure":  UnseenFailure,
	"PickUp":         PickUp,
	"Reverse":        Reverse,
	"PlayAgain":      PlayAgain,
	"ClearPile":      ClearPile,
	"Draw":           Draw,
	"Burn":           Burn,
	"NoMoves":        NoMoves,
	"PlayerFinished": PlayerFinished,
	"GameOver":       GameOver,
}

func (a Action) String() string {
	return ActionNames[a]
}

// MarshalText lets an Action appear by name in JSON and log fields
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	action, ok := NameToAction[string(text)]
	if !ok {
		return fmt.Errorf("unknown action %q", text)
	}
	*a = action
	return nil
}

// Event is a single effect produced by the game engine.
// Player is the 0-based index of the acting player.
type Event struct {
	Turn   int         `json:"turn"`
	Player int         `json:"player"`
	Action Action      `json:"action"`
	Cards  []deck.Card `json:"cards,omitempty"`
	// Options holds the cards a player could legally choose from
	Options []deck.Card `json:"options,omitempty"`
}
