package assistantService

import (
	"context"
	"fmt"
	"testing"

	"ProjectJarvis/internal/api/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHistoryPagination(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{
			Text: fmt.Sprintf("open github %d", i),
		})
		require.NoError(t, err)
	}

	resp, err := h.service.GetHistory(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Entries, 3)

	resp, err = h.service.GetHistory(ctx, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page, "page and limit are clamped")
	assert.Equal(t, 20, resp.Limit)
}

func TestClearHistorySpeaksWithoutAppending(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "hello jarvis"})
	require.NoError(t, err)
	require.Equal(t, 1, h.repo.Count(ctx))

	require.NoError(t, h.service.ClearHistory(ctx))

	assert.Equal(t, 0, h.repo.Count(ctx), "confirmation is spoken, never logged")

	var spokeConfirmation bool
	for _, ev := range h.hub.eventsOf("speak") {
		payload := ev.Payload.(map[string]interface{})
		if payload["text"] == "Conversation history cleared, Sir." {
			spokeConfirmation = true
		}
	}
	assert.True(t, spokeConfirmation)
	assert.Len(t, h.hub.eventsOf("history_clear"), 1)
}

func TestGetStatusCountsEntries(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	status, err := h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "idle", status.Status)
	assert.Zero(t, status.Entries)

	_, err = h.service.InterpretCommand(ctx, assistant.InterpretRequest{Text: "hello jarvis"})
	require.NoError(t, err)

	status, err = h.service.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Entries)
}

func TestGetSites(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.GetSites(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.Total, len(resp.Sites))
	assert.GreaterOrEqual(t, resp.Total, 35)

	var foundYoutube bool
	for _, site := range resp.Sites {
		if site.Alias == "youtube" {
			foundYoutube = true
			assert.Equal(t, "https://www.youtube.com", site.URL)
		}
	}
	assert.True(t, foundYoutube)
}
