package controller

import (
	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/pkg/serverutils"
	"ai-procurement-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	LoadSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	ClearError(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chat", c.Chat)
	h.Get("sessions/:id", c.LoadSession)
	h.Delete("sessions/:id", c.DeleteSession)
	h.Post("sessions/:id/clear-error", c.ClearError)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.assistantService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat turn processed", res))
}

func (c *assistantController) LoadSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.assistantService.LoadSession(ctx.Context(), userId, ctx.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		// Unknown session is not an error; the client starts fresh.
		return ctx.JSON(serverutils.SuccessResponse[*dto.SessionStateResponse]("Session not found", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session state", res))
}

func (c *assistantController) DeleteSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.assistantService.DeleteSession(ctx.Context(), userId, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}

func (c *assistantController) ClearError(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.assistantService.ClearError(userId, ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Error cleared", nil))
}
