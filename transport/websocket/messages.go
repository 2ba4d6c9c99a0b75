package websocket

import (
	"github.com/cfour-labs/connect4-server/game/service"
	"github.com/cfour-labs/connect4-server/solver"
)

// Message kinds on the wire.
const (
	typeRegister  = "register"
	typeMove      = "move"
	typeWaiting   = "waiting"
	typeGameState = "game_state"
	typeHint      = "hint"
	typeError     = "error"
)

// clientMessage is the inbound envelope. Type selects which fields matter.
type clientMessage struct {
	Type       string `json:"type"`
	Name       string `json:"name,omitempty"`
	WantsHints bool   `json:"wants_hints,omitempty"`
	Column     *int   `json:"column,omitempty"`
}

// serverMessage is the outbound envelope.
type serverMessage struct {
	Type     string            `json:"type"`
	Message  string            `json:"message,omitempty"`
	State    *service.GameView `json:"state,omitempty"`
	Analysis *solver.Analysis  `json:"analysis,omitempty"`
}

func waitingMessage() *serverMessage {
	return &serverMessage{Type: typeWaiting, Message: "Waiting for opponent..."}
}

func stateMessage(state *service.GameView) *serverMessage {
	return &serverMessage{Type: typeGameState, State: state}
}

func hintMessage(analysis *solver.Analysis) *serverMessage {
	return &serverMessage{Type: typeHint, Analysis: analysis}
}

func errorMessage(message string) *serverMessage {
	return &serverMessage{Type: typeError, Message: message}
}
