package assistantService

import (
	"context"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"
	contextPkg "ProjectJarvis/pkg/context"
	"ProjectJarvis/pkg/log"
)

func (s *assistantService) GetHistory(ctx context.Context, page, limit int) (*assistant.HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &assistant.HistoryResponse{
		Entries: entries,
		Page:    page,
		Limit:   limit,
		Total:   total,
	}, nil
}

// ClearHistory wipes the conversation log and confirms it aloud. The
// confirmation is spoken only, never logged, so a fresh log stays empty.
// Lookups already in flight are not cancelled; their replacements resolve
// against ids that no longer exist and are absorbed.
func (s *assistantService) ClearHistory(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.repo.Clear(ctx); err != nil {
		return err
	}

	s.hub.Broadcast(eventHistoryClear, nil)
	s.speak(ctx, respHistoryClear)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
	}).Info("Conversation history cleared")

	return nil
}

func (s *assistantService) GetStatus(ctx context.Context) (*assistant.StatusResponse, error) {
	s.sessionMutex.Lock()
	session := s.session
	s.sessionMutex.Unlock()

	return &assistant.StatusResponse{
		Status:    session.Status.String(),
		Listening: session.Status == entity.CaptureListening,
		Message:   session.StatusMessage,
		Entries:   s.repo.Count(ctx),
	}, nil
}

func (s *assistantService) GetSites(ctx context.Context) (*assistant.SitesResponse, error) {
	sites := s.matcher.Sites()

	listings := make([]assistant.SiteListing, 0, len(sites))
	for _, site := range sites {
		listings = append(listings, assistant.SiteListing{
			Alias: site.Alias,
			URL:   site.URL,
		})
	}

	return &assistant.SitesResponse{
		Sites: listings,
		Total: len(listings),
	}, nil
}
