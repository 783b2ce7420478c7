package models

// MessageType defines the type of websocket message
type MessageType string

const (
	MsgNewGame    MessageType = "NEW_GAME"
	MsgFire       MessageType = "FIRE"
	MsgGameStart  MessageType = "GAME_START"
	MsgShotResult MessageType = "SHOT_RESULT"
	MsgAIShot     MessageType = "AI_SHOT"
	MsgGameOver   MessageType = "GAME_OVER"
	MsgError      MessageType = "ERROR"
)

// WSMessage is the envelope for all websocket communications
type WSMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// Cell is a grid coordinate as it crosses the wire.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewGamePayload is sent by the client to start a match.
type NewGamePayload struct {
	Mode string `json:"mode,omitempty"`
}

// FirePayload is sent by the client to shoot a cell on the AI's board.
type FirePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ShipPlacement tells the client where one of its own ships sits.
type ShipPlacement struct {
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

// GameStartPayload is sent once the fleets are placed.
type GameStartPayload struct {
	GameID    string          `json:"gameId"`
	BoardSize int             `json:"boardSize"`
	Ships     []ShipPlacement `json:"ships"`
}

// ShotResultPayload reports the resolution of the player's shot.
type ShotResultPayload struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Outcome string `json:"outcome"`
	Ship    string `json:"ship,omitempty"`
}

// AIShotPayload reports the AI's shot against the player's board.
type AIShotPayload struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Outcome string `json:"outcome"`
	Ship    string `json:"ship,omitempty"`
}

// GameOverPayload announces the winner.
type GameOverPayload struct {
	Winner string `json:"winner"`
	Rounds int    `json:"rounds"`
}

// ErrorPayload carries a client-facing error message.
type ErrorPayload struct {
	Message string `json:"message"`
}
