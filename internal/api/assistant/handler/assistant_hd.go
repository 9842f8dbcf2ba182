package assistantHandler

import (
	"time"

	"ProjectJarvis/internal/api/assistant"
	contextPkg "ProjectJarvis/pkg/context"
	"ProjectJarvis/pkg/handlerUtil"
	"ProjectJarvis/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AssistantHandler) InterpretCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req assistant.InterpretRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"text":       req.Text,
	}).Debug("Processing text command")

	result, err := h.assistantService.InterpretCommand(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "interpret_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"action":     result.Action,
		}).Info("Command interpreted")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *AssistantHandler) InterpretAudioCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	file, err := ctx.FormFile("audio_file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, assistant.ErrInvalidAudioFile, ctx.Path(), "parse_audio_file")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"file_name":  file.Filename,
		"file_size":  file.Size,
	}).Debug("Processing audio command")

	result, err := h.assistantService.InterpretAudioCommand(c, assistant.InterpretAudioRequest{AudioFile: file})
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "interpret_audio_command")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *AssistantHandler) StartCapture(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result, err := h.assistantService.StartCapture(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "start_capture")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *AssistantHandler) HandleDeviceEvent(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req assistant.DeviceEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"event_type": req.Type,
	}).Debug("Processing device event")

	result, err := h.assistantService.HandleDeviceEvent(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "handle_device_event")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *AssistantHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	result, err := h.assistantService.GetHistory(c, page, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *AssistantHandler) ClearHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.assistantService.ClearHistory(c); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_history")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
}

func (h *AssistantHandler) GetStatus(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result, err := h.assistantService.GetStatus(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_status")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *AssistantHandler) GetSites(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result, err := h.assistantService.GetSites(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_sites")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *AssistantHandler) TestNLP(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req assistant.NLPTestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.assistantService.TestNLP(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "test_nlp")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}
