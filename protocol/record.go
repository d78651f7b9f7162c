package protocol

// TurnRecord is a snapshot of every player's zones taken after a turn.
// The first five fields are read by the analysis tooling; the rest are
// informational.
type TurnRecord struct {
	TurnNumber       int        `json:"turn_number"`
	NumCardsInHands  []int      `json:"num_cards_in_hands"`
	NumFaceUpCards   []int      `json:"num_face_up_cards"`
	NumFaceDownCards []int      `json:"num_face_down_cards"`
	CardsInHands     [][]string `json:"cards_in_hands"`

	GameID        string `json:"game_id,omitempty"`
	CurrentPlayer int    `json:"current_player"`
	Direction     int    `json:"direction"`
	PileSize      int    `json:"pile_size"`
	DrawPileSize  int    `json:"draw_pile_size"`
}
