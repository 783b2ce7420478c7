package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"battleship/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins (CORS) for development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs handles websocket requests from the peer.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "err", err)
		return
	}

	defer func() {
		hub.HandleDisconnect(conn)
		conn.Close()
	}()

	log.Info("client connected", "remote", conn.RemoteAddr())

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debug("client read ended", "err", err)
			break
		}

		switch msg.Type {
		case models.MsgNewGame:
			mode := ""
			if data, ok := msg.Payload.(map[string]interface{}); ok {
				mode, _ = data["mode"].(string)
			}
			hub.HandleNewGame(conn, mode)

		case models.MsgFire:
			data, ok := msg.Payload.(map[string]interface{})
			if !ok {
				continue
			}
			// JSON numbers decode as float64 behind interface{}
			row, rowOK := data["row"].(float64)
			col, colOK := data["col"].(float64)
			if rowOK && colOK {
				hub.HandleFire(conn, int(row), int(col))
			}
		}
	}
}
