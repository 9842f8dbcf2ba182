package assistantHandler

import (
	assistantService "ProjectJarvis/internal/api/assistant/service"
	"ProjectJarvis/internal/middleware"
	websocketPkg "ProjectJarvis/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
	hub              websocketPkg.ItfHub
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
	hub websocketPkg.ItfHub,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validator,
		middleware:       middleware,
		assistantService: as,
		hub:              hub,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	assistant := srv.Group("/assistant")

	assistant.Post("/command", h.InterpretCommand)
	assistant.Post("/command/audio", h.InterpretAudioCommand)

	assistant.Post("/session/start", h.StartCapture)
	assistant.Post("/session/event", h.HandleDeviceEvent)

	assistant.Get("/history", h.GetHistory)
	assistant.Delete("/history", h.ClearHistory)
	assistant.Get("/status", h.GetStatus)
	assistant.Get("/sites", h.GetSites)
	assistant.Post("/nlp/test", h.TestNLP)

	assistant.Use("/events", wsMiddleware)
	assistant.Get("/events", websocket.New(h.handleEventStream))
}
