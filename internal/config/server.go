package config

import (
	"fmt"
	"os"

	assistantHandler "ProjectJarvis/internal/api/assistant/handler"
	assistantRepository "ProjectJarvis/internal/api/assistant/repository"
	assistantService "ProjectJarvis/internal/api/assistant/service"
	"ProjectJarvis/internal/middleware"
	"ProjectJarvis/pkg/audio"
	"ProjectJarvis/pkg/nlp"
	"ProjectJarvis/pkg/redis"
	"ProjectJarvis/pkg/s3"
	"ProjectJarvis/pkg/utils"
	websocketPkg "ProjectJarvis/pkg/websocket"
	"ProjectJarvis/pkg/wikipedia"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
	hub         websocketPkg.ItfHub
	tts         audio.ItfTTS
	transcriber audio.ItfTranscriber
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithEventHub() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before event hub")
		}
		s.hub = websocketPkg.NewHub(s.log)
		return nil
	}
}

func WithTTS(tts audio.ItfTTS) ServerOption {
	return func(s *Server) error {
		s.tts = tts
		return nil
	}
}

func WithTranscriber(transcriber audio.ItfTranscriber) ServerOption {
	return func(s *Server) error {
		s.transcriber = transcriber
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Assistant Domain
	matcher := nlp.NewMatcher()
	wikipediaClient := wikipedia.New(s.log)
	assistantRepo := assistantRepository.New(s.log)
	assistantConfig := assistantService.NewAssistantConfig()
	assistantServices := assistantService.New(
		s.log,
		assistantRepo,
		matcher,
		wikipediaClient,
		s.tts,
		s.transcriber,
		s.s3Client,
		s.redisServer,
		s.hub,
		s.utils,
		assistantConfig,
	)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices, s.hub)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, assistantHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
