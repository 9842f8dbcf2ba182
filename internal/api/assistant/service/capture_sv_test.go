package assistantService

import (
	"context"
	"testing"
	"time"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCaptureWhileListeningIsNoOp(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	first, err := h.service.StartCapture(ctx)
	require.NoError(t, err)
	assert.Equal(t, "listening", first.Status)

	second, err := h.service.StartCapture(ctx)
	require.NoError(t, err)
	assert.Equal(t, "listening", second.Status)
	assert.Equal(t, "already listening", second.Message)

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Listening, "state unchanged by the second start")
}

func TestDeviceResultReachesInterpreter(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	resp, err := h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{
		Type:       "result",
		Text:       "Open YouTube",
		Confidence: 0.93,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ActionOpenURL, resp.Action)
	assert.Equal(t, "https://www.youtube.com", resp.Target)

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Listening, "session returns to idle after a result")
}

func TestDeviceNoMatch(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	resp, err := h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "nomatch"})
	require.NoError(t, err)

	assert.Equal(t, "I didn't understand that, Sir. Could you please rephrase?", resp.Text)

	last, ok := h.repo.Last(ctx)
	require.True(t, ok)
	assert.Equal(t, "(Unclear speech)", last.UserText)
	assert.Equal(t, 0, h.wiki.callCount(), "interpreter is not invoked on no-match")
}

func TestDeviceErrorNoSpeech(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	resp, err := h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "error", Code: "no-speech"})
	require.NoError(t, err)

	assert.Equal(t, "I didn't hear anything, Sir. Please try again.", resp.Text)

	last, ok := h.repo.Last(ctx)
	require.True(t, ok)
	assert.Equal(t, "(No speech detected)", last.UserText)
}

func TestDeviceErrorPermissionDenied(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	resp, err := h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "error", Code: "not-allowed"})
	require.NoError(t, err)
	assert.Empty(t, resp.Text)

	assert.Equal(t, 0, h.repo.Count(ctx), "capture errors never reach the history")

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Listening)
	assert.Equal(t, "Microphone permission denied. Please allow microphone access.", status.Message)

	for _, ev := range h.hub.eventsOf("speak") {
		payload := ev.Payload.(map[string]interface{})
		assert.NotEqual(t, status.Message, payload["text"], "status messages are never spoken")
	}
}

func TestDeviceErrorNoMicrophone(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	_, err = h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "error", Code: "audio-capture"})
	require.NoError(t, err)

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "No microphone detected. Please check your microphone connection.", status.Message)
}

func TestStartCaptureClearsStatusMessage(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)
	_, err = h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "error", Code: "not-allowed"})
	require.NoError(t, err)

	_, err = h.service.StartCapture(ctx)
	require.NoError(t, err)

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, status.Message, "a fresh attempt clears the persistent error")
}

func TestDeviceEnd(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	_, err = h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "end"})
	require.NoError(t, err)

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Listening)
	assert.Equal(t, 0, h.repo.Count(ctx))
}

func TestSilenceTimeout(t *testing.T) {
	h := newTestHarness(t, func(h *testHarness) {
		h.config.SilenceTimeout = 30 * time.Millisecond
	})
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		last, ok := h.repo.Last(ctx)
		return ok && last.UserText == "(Timeout)"
	}, 2*time.Second, 10*time.Millisecond)

	last, _ := h.repo.Last(ctx)
	assert.Equal(t, "I didn't hear anything, Sir. Please click the button and speak.", last.AssistantText)

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Listening)

	// the device was told to stop
	var sawStop bool
	for _, ev := range h.hub.eventsOf("device") {
		if cmd, ok := ev.Payload.(map[string]string); ok && cmd["command"] == "stop" {
			sawStop = true
		}
	}
	assert.True(t, sawStop)
}

func TestResultDisarmsSilenceTimer(t *testing.T) {
	h := newTestHarness(t, func(h *testHarness) {
		h.config.SilenceTimeout = 50 * time.Millisecond
	})
	ctx := context.Background()

	_, err := h.service.StartCapture(ctx)
	require.NoError(t, err)

	_, err = h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "result", Text: "hello jarvis"})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	for _, ev := range h.hub.eventsOf("history_append") {
		entry := ev.Payload.(entity.ConversationEntry)
		assert.NotEqual(t, "(Timeout)", entry.UserText, "disarmed timer must not fire")
	}
	assert.Equal(t, 1, h.repo.Count(ctx))
}

func TestInvalidDeviceEvent(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.HandleDeviceEvent(ctx, assistant.DeviceEventRequest{Type: "bogus"})
	assert.ErrorIs(t, err, assistant.ErrInvalidDeviceEvent)
}
