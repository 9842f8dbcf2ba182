package assistantService

import (
	"context"
	"fmt"
	"time"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"
	contextPkg "ProjectJarvis/pkg/context"
	"ProjectJarvis/pkg/log"
)

const (
	deviceEventResult  = "result"
	deviceEventNoMatch = "nomatch"
	deviceEventError   = "error"
	deviceEventEnd     = "end"

	deviceErrNoSpeech     = "no-speech"
	deviceErrAudioCapture = "audio-capture"
	deviceErrNotAllowed   = "not-allowed"
)

// StartCapture opens one listening attempt. A start while a session is
// already listening changes nothing; the caller sees the unchanged state.
func (s *assistantService) StartCapture(ctx context.Context) (*assistant.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.sessionMutex.Lock()
	defer s.sessionMutex.Unlock()

	if s.session.Status == entity.CaptureListening {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
		}).Debug("Capture already in progress, ignoring start")
		return &assistant.SessionResponse{
			Status:  s.session.Status.String(),
			Message: "already listening",
		}, nil
	}

	s.session.Status = entity.CaptureListening
	s.session.StatusMessage = ""
	s.session.SilenceDeadline = time.Now().Add(s.config.SilenceTimeout)

	s.silenceTimer = time.AfterFunc(s.config.SilenceTimeout, s.onSilenceTimeout)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"deadline":   s.session.SilenceDeadline,
	}).Info("Capture session started")

	s.broadcastStatus()
	s.hub.Broadcast(eventDevice, map[string]string{"command": "listen"})

	return &assistant.SessionResponse{Status: s.session.Status.String()}, nil
}

// HandleDeviceEvent consumes one capture-device callback and drives the
// session back to idle. Only a recognized utterance reaches the
// interpreter; every other outcome has its own fixed reply or status.
func (s *assistantService) HandleDeviceEvent(ctx context.Context, req assistant.DeviceEventRequest) (*assistant.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	switch req.Type {
	case deviceEventResult:
		s.finishCapture()

		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"text":       req.Text,
			"confidence": req.Confidence,
		}).Info("Utterance recognized")

		return s.interpret(ctx, req.Text)

	case deviceEventNoMatch:
		s.finishCapture()

		entry, err := s.appendEntry(ctx, placeholderNoMatch, respNoMatch)
		if err != nil {
			return nil, err
		}
		s.speak(ctx, respNoMatch)

		return &assistant.CommandResponse{
			EntryID: entry.ID,
			Text:    respNoMatch,
			Action:  entity.ActionNone,
		}, nil

	case deviceEventError:
		return s.handleDeviceError(ctx, req.Code)

	case deviceEventEnd:
		s.finishCapture()

		s.sessionMutex.Lock()
		s.broadcastStatus()
		s.sessionMutex.Unlock()

		return &assistant.CommandResponse{Action: entity.ActionNone}, nil

	default:
		return nil, assistant.ErrInvalidDeviceEvent
	}
}

// handleDeviceError maps device error codes. Only no-speech gets a spoken
// apology and a history entry; hardware and permission failures surface a
// persistent status message and nothing else.
func (s *assistantService) handleDeviceError(ctx context.Context, code string) (*assistant.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	s.finishCapture()

	if code == deviceErrNoSpeech {
		entry, err := s.appendEntry(ctx, placeholderNoSpeech, respNoSpeech)
		if err != nil {
			return nil, err
		}
		s.speak(ctx, respNoSpeech)

		return &assistant.CommandResponse{
			EntryID: entry.ID,
			Text:    respNoSpeech,
			Action:  entity.ActionNone,
		}, nil
	}

	var message string
	switch code {
	case deviceErrAudioCapture:
		message = respErrNoMic
	case deviceErrNotAllowed:
		message = respErrNotAllowed
	default:
		message = fmt.Sprintf("Error: %s. Please try again.", code)
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"code":       code,
	}).Warn("Capture device error")

	s.sessionMutex.Lock()
	s.session.StatusMessage = message
	s.broadcastStatus()
	s.sessionMutex.Unlock()

	return &assistant.CommandResponse{Action: entity.ActionNone}, nil
}

// finishCapture disarms the silence timer and returns the session to idle.
func (s *assistantService) finishCapture() {
	s.sessionMutex.Lock()
	defer s.sessionMutex.Unlock()

	if s.silenceTimer != nil {
		s.silenceTimer.Stop()
		s.silenceTimer = nil
	}

	s.session.Status = entity.CaptureIdle
	s.session.SilenceDeadline = time.Time{}
}

// onSilenceTimeout fires when eight seconds pass without a device event.
// The device is told to stop and the user hears the fixed timeout apology.
func (s *assistantService) onSilenceTimeout() {
	s.sessionMutex.Lock()
	if s.session.Status != entity.CaptureListening {
		s.sessionMutex.Unlock()
		return
	}
	s.session.Status = entity.CaptureIdle
	s.session.SilenceDeadline = time.Time{}
	s.silenceTimer = nil
	s.broadcastStatus()
	s.sessionMutex.Unlock()

	s.hub.Broadcast(eventDevice, map[string]string{"command": "stop"})

	ctx := context.Background()
	if _, err := s.appendEntry(ctx, placeholderTimeout, respTimeout); err != nil {
		s.log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("Failed to record capture timeout")
		return
	}
	s.speak(ctx, respTimeout)
}
