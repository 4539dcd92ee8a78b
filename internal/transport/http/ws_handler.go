package http

import (
	"encoding/json"
	"log"
	"net/http"

	"exam-review-service/internal/app"
	"exam-review-service/internal/domain"
	"exam-review-service/internal/game"

	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type answerResultPayload struct {
	Record  domain.AnswerRecord `json:"record"`
	Session game.Snapshot       `json:"session"`
}

type restartPayload struct {
	Code string `json:"code"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and drives one play-through
// per connection. All session mutation happens synchronously in the read
// loop, so every reply reflects the message that caused it.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	playerID := r.URL.Query().Get("playerId")
	if code == "" || playerID == "" {
		http.Error(w, "missing code or playerId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	snap, err := h.service.StartSession(r.Context(), code, playerID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	// Dropping the connection counts as navigating away.
	defer h.service.EndSession(r.Context(), playerID)

	_ = conn.WriteJSON(outboundMessage[game.Snapshot]{Type: "session", Payload: snap})

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "answer":
			var sub domain.SubmittedAnswer
			if err := json.Unmarshal(inbound.Payload, &sub); err != nil {
				h.writeError(conn, "invalid answer payload")
				continue
			}
			snap, err := h.service.SetAnswer(r.Context(), playerID, sub)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[game.Snapshot]{Type: "session", Payload: snap})

		case "submit":
			record, snap, err := h.service.SubmitAnswer(r.Context(), playerID)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[answerResultPayload]{Type: "answerResult", Payload: answerResultPayload{
				Record:  record,
				Session: snap,
			}})

		case "next":
			snap, err := h.service.NextQuestion(r.Context(), playerID)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[game.Snapshot]{Type: "session", Payload: snap})
			if snap.Phase == game.PhaseFinished {
				results, err := h.service.Results(r.Context(), playerID)
				if err != nil {
					h.writeError(conn, err.Error())
					continue
				}
				_ = conn.WriteJSON(outboundMessage[game.Results]{Type: "results", Payload: results})
			}

		case "restart":
			var payload restartPayload
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					h.writeError(conn, "invalid restart payload")
					continue
				}
			}
			nextCode := payload.Code
			if nextCode == "" {
				nextCode = code
			}
			snap, err := h.service.StartSession(r.Context(), nextCode, playerID)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			code = nextCode
			_ = conn.WriteJSON(outboundMessage[game.Snapshot]{Type: "session", Payload: snap})

		default:
			h.writeError(conn, "unsupported message type")
		}
	}
}

func (h *WSHandler) writeError(conn *websocket.Conn, msg string) {
	if err := conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: msg}}); err != nil {
		log.Printf("ws write error: %v", err)
	}
}
