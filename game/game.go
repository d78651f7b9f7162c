package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/canary/deck"
	"github.com/minaorangina/canary/protocol"
	"github.com/minaorangina/canary/rng"
)

var (
	ErrNilGame           = errors.New("game is nil")
	ErrTooFewPlayers     = errors.New("minimum of 2 players required")
	ErrTooManyPlayers    = errors.New("maximum of 8 players allowed")
	ErrNoPlayers         = errors.New("game has no players")
	ErrNotStarted        = errors.New("game has not started")
	ErrAlreadyStarted    = errors.New("game has already started")
	ErrGameOver          = errors.New("game is already over")
	ErrTurnLimitExceeded = errors.New("turn limit exceeded")
	ErrCardsNotConserved = errors.New("cards were created or lost")
)

// Shed is a single simulated game. It owns every zone and is not safe for
// concurrent use.
type Shed struct {
	// Deck is the draw pile
	Deck deck.Deck
	// Pile is the discard pile; the last card is the top
	Pile []deck.Card
	// Burned holds cards removed from the game by a Ten or a burn
	Burned         []deck.Card
	PlayerCards    []*PlayerCards
	CurrentTurnIdx int
	// Direction is 1 or -1
	Direction  int
	TurnNumber int
	MaxTurns   int

	src               rng.Source
	original          map[deck.Card]int
	checkConservation bool
	started           bool
	gameOver          bool
	winner            int
}

// Option configures a new game
type Option func(*Shed)

// WithSource sets the random source used to shuffle, deal and choose moves
func WithSource(src rng.Source) Option {
	return func(s *Shed) {
		s.src = src
	}
}

// WithMaxTurnsFactor bounds a game to factor turns per card in play
func WithMaxTurnsFactor(factor int) Option {
	return func(s *Shed) {
		if factor > 0 {
			s.MaxTurns = factor * len(s.Deck)
		}
	}
}

// WithConservationCheck makes every turn verify that no card was created or lost
func WithConservationCheck() Option {
	return func(s *Shed) {
		s.checkConservation = true
	}
}

// TurnResult describes one completed turn
type TurnResult struct {
	Events   []protocol.Event
	Record   protocol.TurnRecord
	GameOver bool
	Winner   int
}

// New shuffles a deck and deals a game for numPlayers players
func New(numPlayers int, opts ...Option) (*Shed, error) {
	if numPlayers < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if numPlayers > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	s := &Shed{
		Deck:        deck.New(numPlayers),
		Pile:        []deck.Card{},
		Burned:      []deck.Card{},
		PlayerCards: make([]*PlayerCards, 0, numPlayers),
		Direction:   1,
		winner:      -1,
	}
	s.MaxTurns = defaultMaxTurnsFactor * len(s.Deck)
	s.original = deck.Count(s.Deck)

	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rng.Crypto{}
	}

	s.Deck.Shuffle(s.src)

	// initial card deal
	for i := 0; i < numPlayers; i++ {
		unseen := s.Deck.Deal(numCardsInGroup)
		candidates := s.Deck.Deal(numCandidates)

		chosen := map[int]bool{}
		for _, idx := range rng.ChooseK(s.src, candidates, numCardsInGroup) {
			chosen[idx] = true
		}

		hand, seen := []deck.Card{}, []deck.Card{}
		for idx, c := range candidates {
			if chosen[idx] {
				seen = append(seen, c)
			} else {
				hand = append(hand, c)
			}
		}

		s.PlayerCards = append(s.PlayerCards, NewPlayerCards(hand, seen, unseen))
	}

	return s, nil
}

// ShedOpts describes a game already in progress
type ShedOpts struct {
	Deck           deck.Deck
	Pile           []deck.Card
	Burned         []deck.Card
	PlayerCards    []*PlayerCards
	CurrentTurnIdx int
	Direction      int
	TurnNumber     int
	MaxTurns       int
	Source         rng.Source
}

// ExistingShed constructs a game that has already started, from opts
func ExistingShed(opts ShedOpts) (*Shed, error) {
	if len(opts.PlayerCards) == 0 {
		return nil, ErrNoPlayers
	}
	if opts.CurrentTurnIdx < 0 || opts.CurrentTurnIdx >= len(opts.PlayerCards) {
		return nil, fmt.Errorf("current turn index %d out of range", opts.CurrentTurnIdx)
	}

	s := &Shed{
		Deck:           deck.Deck(copyCards(opts.Deck)),
		Pile:           copyCards(opts.Pile),
		Burned:         copyCards(opts.Burned),
		PlayerCards:    make([]*PlayerCards, 0, len(opts.PlayerCards)),
		CurrentTurnIdx: opts.CurrentTurnIdx,
		Direction:      opts.Direction,
		TurnNumber:     opts.TurnNumber,
		MaxTurns:       opts.MaxTurns,
		src:            opts.Source,
		started:        true,
		winner:         -1,
	}

	for _, pc := range opts.PlayerCards {
		if pc == nil {
			pc = &PlayerCards{}
		}
		s.PlayerCards = append(s.PlayerCards, NewPlayerCards(pc.Hand, pc.Seen, pc.Unseen))
	}
	if s.Direction != -1 {
		s.Direction = 1
	}
	if s.src == nil {
		s.src = rng.Crypto{}
	}

	s.original = s.count()
	if s.MaxTurns <= 0 {
		s.MaxTurns = s.TurnNumber + defaultMaxTurnsFactor*s.totalCards()
	}

	return s, nil
}

// Start picks the starting player. It must be called once, before Turn.
func (s *Shed) Start() (protocol.Event, error) {
	if s == nil {
		return protocol.Event{}, ErrNilGame
	}
	if s.started {
		return protocol.Event{}, ErrAlreadyStarted
	}

	hands := make([][]deck.Card, 0, len(s.PlayerCards))
	for _, pc := range s.PlayerCards {
		hands = append(hands, pc.Hand)
	}

	s.CurrentTurnIdx = FindStartingPlayer(hands, s.src)
	s.started = true

	return protocol.Event{
		Turn:   s.TurnNumber,
		Player: s.CurrentTurnIdx,
		Action: protocol.StartingPlayer,
		Cards:  copyCards(s.PlayerCards[s.CurrentTurnIdx].Hand),
	}, nil
}

// GameOver reports whether a player has won
func (s *Shed) GameOver() bool {
	return s.gameOver
}

// Winner returns the index of the winning player, if there is one
func (s *Shed) Winner() (int, bool) {
	return s.winner, s.gameOver
}

// NumPlayers returns the number of players in the game
func (s *Shed) NumPlayers() int {
	return len(s.PlayerCards)
}

// turn collects what happens during one player's turn
type turn struct {
	number int
	player int
	events []protocol.Event
}

func (t *turn) add(action protocol.Action, cards ...deck.Card) *protocol.Event {
	t.events = append(t.events, protocol.Event{
		Turn:   t.number,
		Player: t.player,
		Action: action,
		Cards:  cards,
	})
	return &t.events[len(t.events)-1]
}

// Turn plays the current player's turn, then checks for a winner, checks
// for a burn and passes play on in the current direction.
func (s *Shed) Turn() (TurnResult, error) {
	if s == nil {
		return TurnResult{}, ErrNilGame
	}
	if !s.started {
		return TurnResult{}, ErrNotStarted
	}
	if s.gameOver {
		return TurnResult{}, ErrGameOver
	}
	if s.TurnNumber >= s.MaxTurns {
		return TurnResult{}, fmt.Errorf("%w: %d turns", ErrTurnLimitExceeded, s.TurnNumber)
	}

	s.TurnNumber++
	t := &turn{number: s.TurnNumber, player: s.CurrentTurnIdx}
	t.add(protocol.TurnStarted, copyCards(s.PlayerCards[t.player].Hand)...)

	state := tryHand
	for state != turnDone {
		state = s.step(state, t)
	}

	state = s.endTurn(t)

	if s.checkConservation && !s.Conserved() {
		return TurnResult{}, fmt.Errorf("%w after turn %d", ErrCardsNotConserved, t.number)
	}

	return TurnResult{
		Events:   t.events,
		Record:   s.snapshot(t),
		GameOver: state == gameOver,
		Winner:   s.winner,
	}, nil
}

func (s *Shed) step(state turnState, t *turn) turnState {
	pc := s.PlayerCards[t.player]

	switch state {
	case tryHand:
		return s.playVisible(t, &pc.Hand, protocol.PlayHand, trySeen)
	case trySeen:
		return s.playVisible(t, &pc.Seen, protocol.PlaySeen, tryUnseen)
	case tryUnseen:
		return s.playUnseen(t, &pc.Unseen)
	}

	return turnDone
}

// playVisible plays a random legal card from a zone the player can see.
// If the zone is empty the turn moves on to next.
func (s *Shed) playVisible(t *turn, zone *[]deck.Card, action protocol.Action, next turnState) turnState {
	if len(*zone) == 0 {
		return next
	}

	moves := legalMoves(s.Pile, *zone)
	if len(moves) == 0 {
		s.pickUpPile(t)
		return turnDone
	}

	options := make([]deck.Card, 0, len(moves))
	for _, idx := range moves {
		options = append(options, (*zone)[idx])
	}

	card := take(zone, moves[rng.ChooseOne(s.src, moves)])
	t.add(action, card).Options = options
	s.commit(t, card)

	return turnDone
}

// playUnseen turns over a random face-down card. The card goes on the pile
// whether or not it can be played; if it can't, the pile is picked up.
func (s *Shed) playUnseen(t *turn, zone *[]deck.Card) turnState {
	if len(*zone) == 0 {
		t.add(protocol.NoMoves)
		return turnDone
	}

	card := take(zone, rng.ChooseOne(s.src, *zone))

	if CanPlay(card, s.Pile) {
		t.add(protocol.PlayUnseen, card)
		s.commit(t, card)
		return turnDone
	}

	s.Pile = append(s.Pile, card)
	t.add(protocol.UnseenFailure, card)
	s.pickUpPile(t)

	return turnDone
}

func (s *Shed) endTurn(t *turn) turnState {
	if winner, ok := s.findWinner(); ok {
		s.gameOver = true
		s.winner = winner
		t.events = append(t.events, protocol.Event{Turn: t.number, Player: winner, Action: protocol.PlayerFinished})
		t.add(protocol.GameOver)
		return gameOver
	}

	if isBurn(s.Pile) {
		burned := s.clearPile()
		t.add(protocol.Burn, burned...)
	}

	s.CurrentTurnIdx = s.offset(s.CurrentTurnIdx, s.Direction)

	return turnDone
}

// findWinner returns the first player, in seating order, with no cards left
func (s *Shed) findWinner() (int, bool) {
	for i, pc := range s.PlayerCards {
		if pc.Finished() {
			return i, true
		}
	}
	return -1, false
}

// offset moves idx by delta seats, wrapping around the table
func (s *Shed) offset(idx, delta int) int {
	n := len(s.PlayerCards)
	return ((idx+delta)%n + n) % n
}

// Conserved reports whether every card dealt is still accounted for
func (s *Shed) Conserved() bool {
	current := s.count()
	if len(current) != len(s.original) {
		return false
	}
	for c, n := range s.original {
		if current[c] != n {
			return false
		}
	}
	return true
}

func (s *Shed) count() map[deck.Card]int {
	groups := [][]deck.Card{s.Deck, s.Pile, s.Burned}
	for _, pc := range s.PlayerCards {
		groups = append(groups, pc.Hand, pc.Seen, pc.Unseen)
	}
	return deck.Count(groups...)
}

func (s *Shed) totalCards() int {
	total := 0
	for _, n := range s.count() {
		total += n
	}
	return total
}
