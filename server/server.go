package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/canary/engine"
	"github.com/minaorangina/canary/game"
	"github.com/minaorangina/canary/protocol"
	"github.com/minaorangina/canary/records"
	"github.com/minaorangina/canary/store"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewSimulationReq struct {
	Players int   `json:"players"`
	Seed    int64 `json:"seed"`
}

// GameServer runs simulations on request and serves their results
type GameServer struct {
	store          store.GameStore
	logger         logrus.FieldLogger
	maxTurnsFactor int
	http.Server
}

// ServerOpts configures a GameServer
type ServerOpts struct {
	Logger         logrus.FieldLogger
	MaxTurnsFactor int
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(str store.GameStore, opts ServerOpts) *GameServer {
	s := &GameServer{
		store:          str,
		logger:         opts.Logger,
		maxTurnsFactor: opts.MaxTurnsFactor,
	}
	if s.store == nil {
		s.store = store.NewInMemoryGameStore()
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}

	router := mux.NewRouter()
	router.HandleFunc("/simulations", s.HandleNewSimulation).Methods(http.MethodPost)
	router.HandleFunc("/simulations", s.HandleListSimulations).Methods(http.MethodGet)
	router.HandleFunc("/simulations/{id}", s.HandleFindSimulation).Methods(http.MethodGet)
	router.HandleFunc("/simulations/{id}/records", s.HandleRecords).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.HandleWS)

	s.Handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

func (g *GameServer) newEngine(req NewSimulationReq, observers ...engine.Observer) (*engine.GameEngine, error) {
	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		NumPlayers:     req.Players,
		Seed:           req.Seed,
		MaxTurnsFactor: g.maxTurnsFactor,
		Observers:      observers,
	})
	if err != nil {
		return nil, err
	}

	if err := g.store.AddGame(ge); err != nil {
		return nil, err
	}

	return ge, nil
}

// HandleNewSimulation runs a complete game and responds with its result
func (g *GameServer) HandleNewSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil {
		http.Error(w, "missing request body", http.StatusBadRequest)
		return
	}

	var data NewSimulationReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, "could not parse request body", http.StatusBadRequest)
		return
	}

	ge, err := g.newEngine(data)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	res, err := ge.Start(r.Context())
	if err != nil {
		g.logger.WithError(err).WithField("game_id", ge.ID()).Error("simulation failed")
	}

	writeJSON(w, http.StatusCreated, res)
}

func (g *GameServer) HandleListSimulations(w http.ResponseWriter, r *http.Request) {
	results := []engine.Result{}
	for _, ge := range g.store.Games() {
		results = append(results, ge.Result())
	}

	writeJSON(w, http.StatusOK, results)
}

func (g *GameServer) HandleFindSimulation(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]
	ge := g.store.FindGame(gameID)
	if ge == nil {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, ge.Result())
}

// HandleRecords streams a game's turn records as concatenated JSON values
func (g *GameServer) HandleRecords(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]
	ge := g.store.FindGame(gameID)
	if ge == nil {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	rw := records.NewWriter(w)
	for _, rec := range ge.Records() {
		if err := rw.Write(rec); err != nil {
			g.logger.WithError(err).WithField("game_id", gameID).Warn("could not write records")
			return
		}
	}
}

// HandleWS runs a game and pushes each turn record down a websocket as it
// is played
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	req, err := parseSimulationQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	send := engine.RecordFunc(func(rec protocol.TurnRecord) error {
		return conn.WriteJSON(rec)
	})

	ge, err := g.newEngine(req, send)
	if err != nil {
		closeWS(conn, websocket.CloseUnsupportedData, err.Error())
		return
	}

	logger := g.logger.WithField("game_id", ge.ID())
	logger.Info("streaming simulation")

	if _, err := ge.Start(context.Background()); err != nil {
		logger.WithError(err).Error("simulation failed")
		closeWS(conn, websocket.CloseInternalServerErr, err.Error())
		return
	}

	closeWS(conn, websocket.CloseNormalClosure, ge.ID())
}

func parseSimulationQuery(r *http.Request) (NewSimulationReq, error) {
	req := NewSimulationReq{Players: 4}
	q := r.URL.Query()

	if p := q.Get("players"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return req, fmt.Errorf("invalid players %q", p)
		}
		req.Players = n
	}
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid seed %q", s)
		}
		req.Seed = seed
	}

	return req, nil
}

func closeWS(conn *websocket.Conn, code int, text string) {
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, text))
}

func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, game.ErrTooFewPlayers) || errors.Is(err, game.ErrTooManyPlayers) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
