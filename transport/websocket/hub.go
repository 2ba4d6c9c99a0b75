package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cfour-labs/connect4-server/game/engine"
	"github.com/cfour-labs/connect4-server/game/service"
	"github.com/cfour-labs/connect4-server/solver"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// inboundMessage is one raw client message awaiting dispatch.
type inboundMessage struct {
	client *Client
	data   []byte
}

// hintResult carries a finished analysis back into the hub loop.
type hintResult struct {
	playerID engine.PlayerID
	analysis *solver.Analysis
	err      error
}

// Hub routes messages between connections and the game service. All state
// (client set, player index) is owned by the Run loop.
type Hub struct {
	service service.GameService
	solver  *solver.Solver

	// Connected clients and the index from registered player to connection.
	clients  map[*Client]bool
	byPlayer map[engine.PlayerID]*Client

	register   chan *Client
	unregister chan *Client
	inbound    chan *inboundMessage
	hints      chan *hintResult

	log *logrus.Entry
}

// NewHub creates a new hub. Run must be started for it to do anything.
func NewHub(svc service.GameService, sv *solver.Solver) *Hub {
	return &Hub{
		service:    svc,
		solver:     sv,
		clients:    make(map[*Client]bool),
		byPlayer:   make(map[engine.PlayerID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan *inboundMessage),
		hints:      make(chan *hintResult, 8),
		log:        logrus.WithField("component", "hub"),
	}
}

// Run starts the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			h.disconnectClient(client)

		case msg := <-h.inbound:
			h.dispatch(msg)

		case hint := <-h.hints:
			h.deliverHint(hint)
		}
	}
}

// ServeWS handles a WebSocket upgrade request from a client.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// dispatch routes one inbound message. Messages from clients that were
// already disconnected are dropped.
func (h *Hub) dispatch(msg *inboundMessage) {
	if !h.clients[msg.client] {
		return
	}

	var m clientMessage
	if err := json.Unmarshal(msg.data, &m); err != nil {
		h.sendTo(msg.client, errorMessage("Invalid message"))
		return
	}

	switch m.Type {
	case typeRegister:
		h.handleRegister(msg.client, &m)
	case typeMove:
		h.handleMove(msg.client, &m)
	default:
		h.sendTo(msg.client, errorMessage("Unknown message type"))
	}
}

// handleRegister creates the player and runs matchmaking.
func (h *Hub) handleRegister(client *Client, m *clientMessage) {
	if client.playerID != "" {
		h.sendTo(client, errorMessage("Already registered"))
		return
	}

	res, err := h.service.Register(context.Background(), m.Name, m.WantsHints)
	if err != nil {
		h.sendTo(client, errorMessage(err.Error()))
		return
	}

	client.playerID = res.Player.ID
	h.byPlayer[res.Player.ID] = client

	if res.Paired {
		h.broadcastState(res.State)
	} else {
		h.sendTo(client, waitingMessage())
	}
}

// handleMove applies a move and broadcasts the result. The broadcast is
// queued before any hint analysis is launched so clients never see a hint
// for a board they have not received.
func (h *Hub) handleMove(client *Client, m *clientMessage) {
	if client.playerID == "" {
		h.sendTo(client, errorMessage("Register first"))
		return
	}
	if m.Column == nil {
		h.sendTo(client, errorMessage("Invalid move"))
		return
	}

	res, err := h.service.Move(context.Background(), client.playerID, *m.Column)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotYourTurn):
			h.sendTo(client, errorMessage("Not your turn"))
		case errors.Is(err, service.ErrIllegalMove):
			h.sendTo(client, errorMessage("Invalid move"))
		default:
			h.sendTo(client, errorMessage("No active game"))
		}
		return
	}

	h.broadcastState(res.State)

	if res.HintFor != "" {
		go h.analyse(res.HintFor, res.Position)
	}
}

// analyse runs the solver outside the hub loop and funnels the result back
// through the hints channel.
func (h *Hub) analyse(playerID engine.PlayerID, position string) {
	analysis, err := h.solver.Analyse(context.Background(), position)
	h.hints <- &hintResult{playerID: playerID, analysis: analysis, err: err}
}

// deliverHint sends a finished analysis to its recipient. Hints for players
// that disconnected while the solver ran are dropped.
func (h *Hub) deliverHint(hint *hintResult) {
	client, ok := h.byPlayer[hint.playerID]
	if !ok {
		return
	}
	if hint.err != nil {
		h.log.WithError(hint.err).Warn("hint analysis failed")
		h.sendTo(client, errorMessage("Hint unavailable: "+hint.err.Error()))
		return
	}
	h.sendTo(client, hintMessage(hint.analysis))
}

// disconnectClient runs the cleanup sequence exactly once per connection:
// waiting-slot release or forfeit via the service, terminal broadcast to the
// remaining player, then removal.
func (h *Hub) disconnectClient(client *Client) {
	if !h.clients[client] {
		return
	}
	delete(h.clients, client)

	if client.playerID != "" {
		if h.byPlayer[client.playerID] == client {
			delete(h.byPlayer, client.playerID)
		}

		res, err := h.service.Disconnect(context.Background(), client.playerID)
		if err == nil && res.Forfeited != nil {
			h.sendToPlayer(res.Opponent, stateMessage(res.Forfeited))
		}
	}

	close(client.send)
}

// broadcastState sends a game snapshot to both of its players.
func (h *Hub) broadcastState(state *service.GameView) {
	msg := stateMessage(state)
	h.sendToPlayer(state.Player1, msg)
	h.sendToPlayer(state.Player2, msg)
}

// sendToPlayer delivers a message to a player's connection, if present.
func (h *Hub) sendToPlayer(playerID engine.PlayerID, msg *serverMessage) {
	if client, ok := h.byPlayer[playerID]; ok {
		h.sendTo(client, msg)
	}
}

// sendTo queues a message on the client's send channel. A client whose
// buffer is full is treated as gone and disconnected.
func (h *Hub) sendTo(client *Client, msg *serverMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.WithError(err).Error("failed to marshal message")
		return
	}

	select {
	case client.send <- data:
	default:
		h.disconnectClient(client)
	}
}
