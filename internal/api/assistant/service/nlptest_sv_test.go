package assistantService

import (
	"context"
	"testing"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestNLPClassification(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		matchType string
		action    entity.ActionType
	}{
		{"empty", "  ", "empty", entity.ActionNone},
		{"known site", "Open YouTube", "site_open", entity.ActionOpenURL},
		{"unknown site", "Open myspace", "site_open", entity.ActionSearch},
		{"intent", "what time is it", "intent", entity.ActionNone},
		{"entity", "tell me about elon musk", "entity", entity.ActionSearch},
		{"fallback", "purple monkey dishwasher", "fallback", entity.ActionSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.service.TestNLP(ctx, assistant.NLPTestRequest{Text: tt.input})
			require.NoError(t, err)
			assert.Equal(t, tt.matchType, resp.MatchType)
			assert.Equal(t, tt.action, resp.Action)
		})
	}
}

func TestTestNLPHasNoSideEffects(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.service.TestNLP(ctx, assistant.NLPTestRequest{Text: "tell me about elon musk"})
	require.NoError(t, err)

	assert.Equal(t, 0, h.repo.Count(ctx), "dry run never writes history")
	assert.Empty(t, h.hub.eventsOf("speak"))
	assert.Empty(t, h.hub.eventsOf("action"))
	assert.Equal(t, 0, h.wiki.callCount(), "dry run never calls the lookup service")
}

func TestTestNLPDetails(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	resp, err := h.service.TestNLP(ctx, assistant.NLPTestRequest{Text: "Open YouTube!"})
	require.NoError(t, err)
	assert.Equal(t, "open youtube", resp.Normalized)
	assert.Equal(t, "youtube", resp.Site)
	assert.Equal(t, "https://www.youtube.com", resp.Target)

	resp, err = h.service.TestNLP(ctx, assistant.NLPTestRequest{Text: "who are you"})
	require.NoError(t, err)
	assert.Equal(t, "assistant_name", resp.Intent)
}
