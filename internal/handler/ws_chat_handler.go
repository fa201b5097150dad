// FILE: internal/handler/ws_chat_handler.go
// WebSocket edge of the intake engine. One connection per user; every text
// frame is fed into the engine and the single reply is written back.
package handler

import (
	"context"
	"strconv"

	"bot-intake-be/internal/dto"
	"bot-intake-be/internal/engine"
	"bot-intake-be/internal/pkg/logger"
	"bot-intake-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type WsChatHandler struct {
	intakeService service.IIntakeService
	logger        logger.ILogger
}

func NewWsChatHandler(intakeService service.IIntakeService, log logger.ILogger) *WsChatHandler {
	return &WsChatHandler{
		intakeService: intakeService,
		logger:        log,
	}
}

func (h *WsChatHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(h.Serve))
}

type wsInbound struct {
	Text string `json:"text"`
}

// Serve runs the read loop for one connection. Identity comes from query
// parameters; the engine's own allow-list still gates every admin action.
func (h *WsChatHandler) Serve(conn *websocket.Conn) {
	userID, err := strconv.ParseInt(conn.Query("user_id"), 10, 64)
	if err != nil {
		_ = conn.WriteJSON(dto.ReplyResponse{Text: "invalid user_id"})
		conn.Close()
		return
	}
	username := conn.Query("username")
	fullName := conn.Query("full_name")
	firstName := conn.Query("first_name")

	h.logger.Info("WS", "Chat connection opened", map[string]interface{}{"user_id": userID})
	defer func() {
		h.logger.Info("WS", "Chat connection closed", map[string]interface{}{"user_id": userID})
		conn.Close()
	}()

	for {
		var in wsInbound
		if err := conn.ReadJSON(&in); err != nil {
			return
		}

		reply, err := h.intakeService.Handle(context.Background(), engine.Inbound{
			UserID:    userID,
			Text:      in.Text,
			Username:  username,
			FullName:  fullName,
			FirstName: firstName,
		})
		if err != nil {
			h.logger.Error("WS", "Failed to handle chat event", map[string]interface{}{
				"user_id": userID, "error": err.Error(),
			})
			continue
		}

		if err := conn.WriteJSON(dto.ReplyResponse{
			Text:         reply.Text,
			Choices:      reply.Choices,
			ClearChoices: reply.ClearChoices,
		}); err != nil {
			return
		}
	}
}
