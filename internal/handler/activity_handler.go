package handler

import (
	"context"
	"os"

	"ai-procurement-be/internal/pkg/logger"
	internalWS "ai-procurement-be/internal/websocket"
	"ai-procurement-be/pkg/events"
	pktNats "ai-procurement-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ActivityHandler bridges the NATS activity stream to the websocket
// hub and owns the /activity/ws upgrade endpoint.
type ActivityHandler struct {
	subscriber *pktNats.Subscriber
	hub        *internalWS.Hub
	logger     logger.ILogger
}

func NewActivityHandler(sub *pktNats.Subscriber, hub *internalWS.Hub, log logger.ILogger) *ActivityHandler {
	return &ActivityHandler{
		subscriber: sub,
		hub:        hub,
		logger:     log,
	}
}

// Start subscribes to every activity subject with a durable consumer
// and forwards each event to the owning user's connections.
func (h *ActivityHandler) Start() error {
	if h.subscriber == nil {
		h.logger.Warn("ActivityHandler", "NATS subscriber not configured, activity feed disabled", nil)
		return nil
	}

	return h.subscriber.Subscribe("activity.>", "activity-feed", func(ctx context.Context, evt events.Event) error {
		activity := internalWS.Activity{
			Type:       evt.EventType(),
			Data:       evt.Payload(),
			OccurredAt: evt.Timestamp(),
		}

		userIDStr, _ := evt.Payload()["user_id"].(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			// Events without an owner go to everyone.
			h.hub.Broadcast(activity)
			return nil
		}

		h.hub.Send(userID, activity)
		return nil
	})
}

// ServeWs authenticates the handshake and upgrades the connection.
// Browsers cannot set headers on websocket requests, so the token is
// accepted from the query string first.
func (h *ActivityHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (query 'token' or Authorization header)"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("ActivityHandler", "Invalid token in websocket handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ActivityHandler", "Websocket session started", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("ActivityHandler", "Websocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *ActivityHandler) RegisterRoutes(router fiber.Router) {
	a := router.Group("/activity")
	a.Get("/ws", h.ServeWs)
}
