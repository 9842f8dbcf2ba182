package assistantService

import (
	"context"
	"testing"
	"time"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"
	"ProjectJarvis/pkg/wikipedia"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretEmptyInput(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "   "})
	require.NoError(t, err)

	assert.Equal(t, "I didn't catch that, Sir. Could you please repeat?", resp.Text)
	assert.Equal(t, entity.ActionNone, resp.Action)
	assert.Empty(t, resp.Target)

	last, ok := h.repo.Last(ctx)
	require.True(t, ok)
	assert.Equal(t, "(No speech detected)", last.UserText)

	assert.Empty(t, h.hub.eventsOf("action"), "no side effect for empty input")
}

func TestInterpretOpenKnownSite(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "Open YouTube"})
	require.NoError(t, err)

	assert.Equal(t, "Opening youtube for you, Sir.", resp.Text)
	assert.Equal(t, entity.ActionOpenURL, resp.Action)
	assert.Equal(t, "https://www.youtube.com", resp.Target)

	last, ok := h.repo.Last(ctx)
	require.True(t, ok)
	assert.Equal(t, "Open YouTube", last.UserText, "history keeps the raw utterance")

	actions := h.hub.eventsOf("action")
	require.Len(t, actions, 1)
}

func TestInterpretOpenUnknownSite(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "Open myspace"})
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "myspace")
	assert.Equal(t, entity.ActionSearch, resp.Action)
	assert.Equal(t, searchURL("myspace"), resp.Target)
}

func TestInterpretTimeIntent(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "What time is it"})
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "3:09:26 PM")
	assert.Equal(t, entity.ActionNone, resp.Action)
	assert.Empty(t, h.hub.eventsOf("action"))
}

func TestInterpretIntentBeatsEntity(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "who are you elon musk"})
	require.NoError(t, err)

	assert.Equal(t, entity.ActionNone, resp.Action)
	assert.Contains(t, resp.Text, "JARVIS")
	assert.Equal(t, 0, h.wiki.callCount(), "entity path must not run when an intent matched")
}

func TestInterpretEntityLookupSuccess(t *testing.T) {
	h := newTestHarness(t, func(h *testHarness) {
		h.wiki.summary = &wikipedia.Summary{
			Title:   "Elon Musk",
			Extract: "A businessman. He leads companies. Extra.",
		}
	})
	ctx := context.Background()

	resp, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "Tell me about Elon Musk"})
	require.NoError(t, err)

	assert.Equal(t, "Let me find information about elon musk for you, Sir.", resp.Text)
	assert.Equal(t, entity.ActionNone, resp.Action, "search fires on resolution, not optimistically")

	want := "Here's what I found: Elon Musk. A businessman. He leads companies."
	require.Eventually(t, func() bool {
		last, ok := h.repo.Last(ctx)
		return ok && last.AssistantText == want
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, h.repo.Count(ctx), "placeholder replaced, not duplicated")

	last, ok := h.repo.Last(ctx)
	require.True(t, ok)
	assert.Equal(t, resp.EntryID, last.ID, "replacement keeps the optimistic entry's id")
	assert.Equal(t, "Tell me about Elon Musk", last.UserText)

	actions := h.hub.eventsOf("action")
	require.Len(t, actions, 1)
	effect := actions[0].Payload.(entity.SideEffect)
	assert.Equal(t, entity.ActionSearch, effect.Type)
	assert.Equal(t, searchURL("Tell me about Elon Musk"), effect.Target)
}

func TestInterpretEntityLookupFailure(t *testing.T) {
	h := newTestHarness(t) // wiki returns nil
	ctx := context.Background()

	_, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "Tell me about Elon Musk"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		last, ok := h.repo.Last(ctx)
		return ok && last.AssistantText == "I couldn't find detailed information, Sir. Opening a web search for you."
	}, 2*time.Second, 10*time.Millisecond)

	actions := h.hub.eventsOf("action")
	require.Len(t, actions, 1, "a failed lookup still launches a search")
	effect := actions[0].Payload.(entity.SideEffect)
	assert.Equal(t, entity.ActionSearch, effect.Type)
}

func TestInterpretFallback(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "purple monkey dishwasher"})
	require.NoError(t, err)

	assert.Equal(t, `Searching the web for "purple monkey dishwasher", Sir.`, resp.Text)
	assert.Equal(t, entity.ActionSearch, resp.Action)
	assert.Equal(t, searchURL("purple monkey dishwasher"), resp.Target)
}

func TestLookupResolutionAfterClearIsAbsorbed(t *testing.T) {
	h := newTestHarness(t, func(h *testHarness) {
		h.wiki.summary = &wikipedia.Summary{Title: "Ada Lovelace", Extract: "A mathematician. First programmer."}
		h.wiki.delay = 100 * time.Millisecond
	})
	ctx := context.Background()

	_, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "tell me about ada lovelace"})
	require.NoError(t, err)

	require.NoError(t, h.service.ClearHistory(ctx))
	assert.Equal(t, 0, h.repo.Count(ctx))

	// the late resolution must not resurrect or corrupt the cleared log
	require.Eventually(t, func() bool {
		return len(h.hub.eventsOf("action")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, h.repo.Count(ctx))
	assert.Empty(t, h.hub.eventsOf("history_replace"))
}

func TestInterpretAudioCommand(t *testing.T) {
	h := newTestHarness(t, func(h *testHarness) {
		h.transcriber.text = "Open YouTube"
	})
	ctx := context.Background()

	file := makeAudioFileHeader(t, "utterance.mp3", []byte("fake-mp3-bytes"))

	resp, err := h.service.InterpretAudioCommand(ctx, assistant.InterpretAudioRequest{AudioFile: file})
	require.NoError(t, err)

	assert.Equal(t, entity.ActionOpenURL, resp.Action)
	assert.Equal(t, "https://www.youtube.com", resp.Target)
}

func TestInterpretAudioCommandRejectsBadFile(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	file := makeAudioFileHeader(t, "notes.txt", []byte("not audio"))

	_, err := h.service.InterpretAudioCommand(ctx, assistant.InterpretAudioRequest{AudioFile: file})
	assert.ErrorIs(t, err, assistant.ErrInvalidAudioFile)
}
