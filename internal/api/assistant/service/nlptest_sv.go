package assistantService

import (
	"context"
	"strings"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"
	"ProjectJarvis/pkg/nlp"
)

// TestNLP classifies an utterance the way interpret would, without
// speaking, without touching the conversation log, and without
// dispatching any side effect. Meant for tuning trigger phrases.
func (s *assistantService) TestNLP(ctx context.Context, req assistant.NLPTestRequest) (*assistant.NLPTestResponse, error) {
	resp := &assistant.NLPTestResponse{
		Input:  req.Text,
		Action: entity.ActionNone,
	}

	if strings.TrimSpace(req.Text) == "" {
		resp.MatchType = string(nlp.MatchEmpty)
		return resp, nil
	}

	normalized := nlp.Normalize(req.Text)
	resp.Normalized = normalized

	if strings.HasPrefix(normalized, sitePrefix) {
		site := strings.TrimSpace(strings.TrimPrefix(normalized, sitePrefix))
		resp.MatchType = string(nlp.MatchSiteOpen)
		resp.Site = site

		if siteURL, ok := s.matcher.LookupSite(site); ok {
			resp.Action = entity.ActionOpenURL
			resp.Target = siteURL
		} else {
			resp.Action = entity.ActionSearch
			resp.Target = searchURL(site)
		}
		return resp, nil
	}

	if intent, ok := s.matcher.MatchIntent(normalized); ok {
		resp.MatchType = string(nlp.MatchIntent)
		resp.Intent = intent.Name
		return resp, nil
	}

	if person, ok := s.matcher.MatchEntity(normalized); ok {
		resp.MatchType = string(nlp.MatchEntity)
		resp.Entity = person
		resp.Action = entity.ActionSearch
		resp.Target = searchURL(req.Text)
		return resp, nil
	}

	resp.MatchType = string(nlp.MatchFallback)
	resp.Action = entity.ActionSearch
	resp.Target = searchURL(req.Text)

	return resp, nil
}
