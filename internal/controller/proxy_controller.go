package controller

import (
	"errors"

	"ai-procurement-be/internal/pkg/logger"
	"ai-procurement-be/internal/pkg/serverutils"
	"ai-procurement-be/pkg/webhook"

	"github.com/gofiber/fiber/v2"
)

type IProxyController interface {
	RegisterRoutes(r fiber.Router)
	Forward(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

// proxyController relays raw JSON bodies to the n8n webhook so the
// browser never talks to the workflow engine directly.
type proxyController struct {
	client *webhook.N8NClient
	log    logger.ILogger
}

func NewProxyController(client *webhook.N8NClient, log logger.ILogger) IProxyController {
	return &proxyController{
		client: client,
		log:    log,
	}
}

func (c *proxyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/proxy")
	h.Post("n8n", c.Forward)
	h.Get("n8n", c.Health)
}

func (c *proxyController) Forward(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if len(body) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Request body is required"))
	}

	respBody, status, err := c.client.Forward(ctx.Context(), body)
	if err != nil {
		c.log.Warn("proxy", "n8n forward failed", map[string]interface{}{
			"status": status,
			"error":  err.Error(),
		})
		switch {
		case errors.Is(err, webhook.ErrTimeout):
			return ctx.Status(fiber.StatusGatewayTimeout).JSON(serverutils.ErrorResponse(504, "Webhook request timed out"))
		case errors.Is(err, webhook.ErrUnreachable):
			return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, "Webhook is unreachable"))
		case errors.Is(err, webhook.ErrUpstream):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(503, "Webhook returned an error"))
		default:
			return err
		}
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(status).Send(respBody)
}

func (c *proxyController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "ok",
		"target": c.client.URL,
	})
}
