// FILE: internal/controller/chat_controller.go
// HTTP edge of the intake engine: one endpoint in, one reply out.
package controller

import (
	"bot-intake-be/internal/dto"
	"bot-intake-be/internal/engine"
	"bot-intake-be/internal/pkg/serverutils"
	"bot-intake-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(api fiber.Router)
}

type chatController struct {
	intakeService service.IIntakeService
	validate      *validator.Validate
}

func NewChatController(intakeService service.IIntakeService) IChatController {
	return &chatController{
		intakeService: intakeService,
		validate:      validator.New(),
	}
}

func (c *chatController) RegisterRoutes(api fiber.Router) {
	chat := api.Group("/chat")
	chat.Post("/messages", c.PostMessage)
}

// PostMessage feeds one inbound chat event into the engine
// @Summary Send a chat message
// @Description Feeds one user message into the intake conversation and returns the reply
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} dto.ReplyResponse
// @Router /api/chat/messages [post]
func (c *chatController) PostMessage(ctx *fiber.Ctx) error {
	var req dto.InboundMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	reply, err := c.intakeService.Handle(ctx.Context(), engine.Inbound{
		UserID:    req.UserID,
		Text:      req.Text,
		Username:  req.Username,
		FullName:  req.FullName,
		FirstName: req.FirstName,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Message handled", dto.ReplyResponse{
		Text:         reply.Text,
		Choices:      reply.Choices,
		ClearChoices: reply.ClearChoices,
	}))
}
