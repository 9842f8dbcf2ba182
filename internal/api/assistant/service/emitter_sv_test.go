package assistantService

import (
	"context"
	"testing"
	"time"

	"ProjectJarvis/internal/api/assistant"

	"github.com/stretchr/testify/require"
)

// A synthesis that finishes late must not disable cancellation for the
// utterance that superseded it, otherwise a third speak cannot silence
// the second one.
func TestSpeakCancelsPreviousSynthesisAfterLateCleanup(t *testing.T) {
	tts := &blockingTTS{}
	h := newTestHarness(t, func(h *testHarness) { h.tts = tts })
	ctx := context.Background()

	_, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "hello jarvis"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return tts.callCount() == 1 },
		time.Second, 5*time.Millisecond)

	_, err = h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "what time is it"})
	require.NoError(t, err)

	first := tts.ctxAt(0)
	require.Eventually(t, func() bool { return first.Err() != nil },
		time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return tts.callCount() == 2 },
		time.Second, 5*time.Millisecond)

	// let the first synthesis run its cleanup before the next utterance
	time.Sleep(50 * time.Millisecond)

	_, err = h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "thank you"})
	require.NoError(t, err)

	second := tts.ctxAt(1)
	require.Eventually(t, func() bool { return second.Err() != nil },
		time.Second, 5*time.Millisecond)
}
