package api

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"battleship/internal/ai"
	"battleship/internal/config"
	"battleship/internal/game"
	"battleship/internal/history"
	"battleship/pkg/models"
)

// client is one connected UI. It lives for the whole connection; starting
// a new game swaps the match inside it rather than replacing the client,
// so there is exactly one write mutex per websocket conn and every frame
// writer shares it.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu    sync.Mutex
	match *game.Match
}

func (c *client) send(msgType models.MessageType, payload interface{}) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(models.WSMessage{Type: msgType, Payload: payload}); err != nil {
		log.Warn("websocket write failed", "err", err)
	}
}

func (c *client) currentMatch() *game.Match {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.match
}

func (c *client) setMatch(m *game.Match) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.match = m
}

// multiRecorder fans a shot out to the store and the event stream.
type multiRecorder []game.Recorder

func (m multiRecorder) RecordShot(ev game.ShotEvent) {
	for _, r := range m {
		r.RecordShot(ev)
	}
}

func (m multiRecorder) RecordResult(matchID, winner string, rounds int) {
	for _, r := range m {
		r.RecordResult(matchID, winner, rounds)
	}
}

// Hub owns the connected clients, one per websocket connection.
// Disconnecting abandons the client's match; a new game is always a fresh
// state instance.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*client

	cfg      config.Config
	store    history.Store
	producer game.Recorder
}

func NewHub(cfg config.Config, store history.Store, producer game.Recorder) *Hub {
	return &Hub{
		clients:  make(map[*websocket.Conn]*client),
		cfg:      cfg,
		store:    store,
		producer: producer,
	}
}

func (h *Hub) recorder() game.Recorder {
	var recorders multiRecorder
	if h.store != nil {
		recorders = append(recorders, h.store)
	}
	if h.producer != nil {
		recorders = append(recorders, h.producer)
	}
	return recorders
}

// getOrAddClient returns the connection's client, registering one on
// first use.
func (h *Hub) getOrAddClient(conn *websocket.Conn) *client {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		return c
	}
	c := &client{conn: conn}
	h.clients[conn] = c
	return c
}

// HandleNewGame places both fleets, builds the AI player, and swaps the
// fresh match into the connection's client. A pending AI reply for the
// old match sees the swap and never writes.
func (h *Hub) HandleNewGame(conn *websocket.Conn, mode string) {
	c := h.getOrAddClient(conn)

	if mode == "" {
		mode = h.cfg.AIMode
	}

	var lookup ai.HistoryLookup
	if h.store != nil {
		lookup = h.store
	}
	player, err := ai.NewPlayer(mode, lookup, ai.Weights{
		Center:  h.cfg.CenterWeight,
		Parity:  h.cfg.ParityWeight,
		History: h.cfg.HistoryWeight,
	})
	if err != nil {
		c.send(models.MsgError, models.ErrorPayload{Message: err.Error()})
		return
	}

	match, err := game.NewMatch(uuid.New().String(), h.cfg.BoardSize, player, h.recorder())
	if err != nil {
		log.Error("match setup failed", "err", err)
		c.send(models.MsgError, models.ErrorPayload{Message: "could not set up the game"})
		return
	}

	c.setMatch(match)
	log.Info("match started", "game", match.ID, "mode", mode)

	var ships []models.ShipPlacement
	for _, ship := range match.PlayerBoard.Ships() {
		placement := models.ShipPlacement{Name: ship.Name}
		for _, cell := range ship.Cells() {
			placement.Cells = append(placement.Cells, models.Cell{Row: cell.Row, Col: cell.Col})
		}
		ships = append(ships, placement)
	}
	c.send(models.MsgGameStart, models.GameStartPayload{
		GameID:    match.ID,
		BoardSize: h.cfg.BoardSize,
		Ships:     ships,
	})
}

// HandleFire resolves the player's shot, then schedules the AI's paced
// reply unless the shot was a no-op or ended the game.
func (h *Hub) HandleFire(conn *websocket.Conn, row, col int) {
	c := h.getOrAddClient(conn)
	match := c.currentMatch()
	if match == nil {
		c.send(models.MsgError, models.ErrorPayload{Message: "no active game"})
		return
	}

	result, err := match.PlayerFire(game.Position{Row: row, Col: col})
	if err != nil {
		c.send(models.MsgError, models.ErrorPayload{Message: err.Error()})
		return
	}

	c.send(models.MsgShotResult, models.ShotResultPayload{
		Row: row, Col: col,
		Outcome: string(result.Outcome),
		Ship:    result.Ship,
	})

	if result.Outcome == game.OutcomeAlreadyShot {
		return
	}

	if match.IsOver() {
		h.finishMatch(c, match)
		return
	}

	go h.aiReply(c, match)
}

// aiReply runs the AI's turn after the pacing delay. The match it was
// scheduled for is pinned: if a new game replaced it while we slept, or
// it finished some other way, nothing is written.
func (h *Hub) aiReply(c *client, match *game.Match) {
	time.Sleep(h.cfg.AIDelay) // pacing so the reply doesn't feel instant

	if c.currentMatch() != match {
		return
	}

	pos, result, err := match.AITurn()
	if err != nil {
		if err != game.ErrMatchFinished {
			log.Error("AI turn failed", "game", match.ID, "err", err)
		}
		return
	}

	c.send(models.MsgAIShot, models.AIShotPayload{
		Row: pos.Row, Col: pos.Col,
		Outcome: string(result.Outcome),
		Ship:    result.Ship,
	})

	if match.IsOver() {
		h.finishMatch(c, match)
	}
}

func (h *Hub) finishMatch(c *client, match *game.Match) {
	c.send(models.MsgGameOver, models.GameOverPayload{
		Winner: match.Winner(),
		Rounds: match.Round(),
	})
	log.Info("match finished", "game", match.ID, "winner", match.Winner())
}

// HandleDisconnect abandons the connection's match, if any.
func (h *Hub) HandleDisconnect(conn *websocket.Conn) {
	h.mu.Lock()
	c, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if !ok {
		return
	}
	if match := c.currentMatch(); match != nil && !match.IsOver() {
		log.Info("match abandoned", "game", match.ID)
	}
}
