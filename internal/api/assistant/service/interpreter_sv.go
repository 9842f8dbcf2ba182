package assistantService

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"
	contextPkg "ProjectJarvis/pkg/context"
	"ProjectJarvis/pkg/log"
	"ProjectJarvis/pkg/nlp"
	redisPkg "ProjectJarvis/pkg/redis"
	"ProjectJarvis/pkg/wikipedia"

	jsoniter "github.com/json-iterator/go"
)

const (
	respNoInput       = "I didn't catch that, Sir. Could you please repeat?"
	respLookupFailed  = "I couldn't find detailed information, Sir. Opening a web search for you."
	respNoSpeech      = "I didn't hear anything, Sir. Please try again."
	respNoMatch       = "I didn't understand that, Sir. Could you please rephrase?"
	respTimeout       = "I didn't hear anything, Sir. Please click the button and speak."
	respHistoryClear  = "Conversation history cleared, Sir."
	respErrNoMic      = "No microphone detected. Please check your microphone connection."
	respErrNotAllowed = "Microphone permission denied. Please allow microphone access."

	placeholderNoSpeech = "(No speech detected)"
	placeholderNoMatch  = "(Unclear speech)"
	placeholderTimeout  = "(Timeout)"

	sitePrefix = "open "
)

func searchURL(query string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(query)
}

func (s *assistantService) InterpretCommand(ctx context.Context, req assistant.InterpretRequest) (*assistant.CommandResponse, error) {
	return s.interpret(ctx, req.Text)
}

func (s *assistantService) InterpretAudioCommand(ctx context.Context, req assistant.InterpretAudioRequest) (*assistant.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateAudioFile(req.AudioFile, s.config.MaxFileSize, s.config.AllowedFormats); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Rejected audio command upload")
		if req.AudioFile != nil && req.AudioFile.Size > s.config.MaxFileSize {
			return nil, assistant.ErrAudioFileTooLarge
		}
		return nil, assistant.ErrInvalidAudioFile
	}

	filePath, err := s.utils.SaveTempFile(req.AudioFile, "utterance-*")
	if err != nil {
		return nil, assistant.ErrTranscriptionFailed
	}
	defer s.utils.RemoveTempFile(filePath)

	transcript, err := s.transcriber.TranscribeAudio(ctx, filePath)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Whisper transcription failed")
		return nil, assistant.ErrTranscriptionFailed
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"transcript": transcript,
	}).Info("Transcribed audio command")

	return s.interpret(ctx, transcript)
}

// interpret runs the command through the priority chain: empty input, site
// open, intent table, entity directory, web-search fallback. The first
// branch that fires decides the reply and the side effect; later branches
// are never consulted.
func (s *assistantService) interpret(ctx context.Context, command string) (*assistant.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(command) == "" {
		entry, err := s.appendEntry(ctx, placeholderNoSpeech, respNoInput)
		if err != nil {
			return nil, err
		}
		s.speak(ctx, respNoInput)
		return &assistant.CommandResponse{
			EntryID: entry.ID,
			Text:    respNoInput,
			Action:  entity.ActionNone,
		}, nil
	}

	normalized := nlp.Normalize(command)

	if strings.HasPrefix(normalized, sitePrefix) {
		return s.interpretSiteOpen(ctx, command, normalized)
	}

	if intent, ok := s.matcher.MatchIntent(normalized); ok {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"intent":     intent.Name,
		}).Info("Matched intent")

		responseText := s.matcher.PickResponse(intent)
		entry, err := s.appendEntry(ctx, command, responseText)
		if err != nil {
			return nil, err
		}
		s.speak(ctx, responseText)
		return &assistant.CommandResponse{
			EntryID: entry.ID,
			Text:    responseText,
			Action:  entity.ActionNone,
		}, nil
	}

	if person, ok := s.matcher.MatchEntity(normalized); ok {
		return s.interpretEntityLookup(ctx, command, person)
	}

	responseText := fmt.Sprintf("Searching the web for %q, Sir.", command)
	entry, err := s.appendEntry(ctx, command, responseText)
	if err != nil {
		return nil, err
	}
	s.speak(ctx, responseText)

	effect := entity.SideEffect{Type: entity.ActionSearch, Target: searchURL(command)}
	s.broadcastAction(effect)

	return &assistant.CommandResponse{
		EntryID: entry.ID,
		Text:    responseText,
		Action:  effect.Type,
		Target:  effect.Target,
	}, nil
}

func (s *assistantService) interpretSiteOpen(ctx context.Context, command, normalized string) (*assistant.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	site := strings.TrimSpace(strings.TrimPrefix(normalized, sitePrefix))

	if siteURL, ok := s.matcher.LookupSite(site); ok {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"site":       site,
			"url":        siteURL,
		}).Info("Opening known site")

		responseText := fmt.Sprintf("Opening %s for you, Sir.", site)
		entry, err := s.appendEntry(ctx, command, responseText)
		if err != nil {
			return nil, err
		}
		s.speak(ctx, responseText)

		effect := entity.SideEffect{Type: entity.ActionOpenURL, Target: siteURL}
		s.broadcastAction(effect)

		return &assistant.CommandResponse{
			EntryID: entry.ID,
			Text:    responseText,
			Action:  effect.Type,
			Target:  effect.Target,
		}, nil
	}

	responseText := fmt.Sprintf("I'm not sure which site %q refers to, Sir. Let me search for it.", site)
	entry, err := s.appendEntry(ctx, command, responseText)
	if err != nil {
		return nil, err
	}
	s.speak(ctx, responseText)

	effect := entity.SideEffect{Type: entity.ActionSearch, Target: searchURL(site)}
	s.broadcastAction(effect)

	return &assistant.CommandResponse{
		EntryID: entry.ID,
		Text:    responseText,
		Action:  effect.Type,
		Target:  effect.Target,
	}, nil
}

// interpretEntityLookup appends an optimistic entry right away so the user
// sees progress, then resolves the summary off the request path. The
// resolution replaces that exact entry by id and always launches a web
// search, found or not.
func (s *assistantService) interpretEntityLookup(ctx context.Context, command, person string) (*assistant.CommandResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"entity":     person,
	}).Info("Matched entity, starting lookup")

	loadingText := fmt.Sprintf("Let me find information about %s for you, Sir.", person)
	entry, err := s.appendEntry(ctx, command, loadingText)
	if err != nil {
		return nil, err
	}
	s.speak(ctx, loadingText)

	// outlive the request; a slow summary must still resolve
	lookupCtx, cancel := context.WithTimeout(
		contextPkg.WithRequestID(context.Background(), requestID),
		s.config.LookupTimeout,
	)

	go func() {
		defer cancel()
		s.resolveLookup(lookupCtx, entry.ID, person, command)
	}()

	return &assistant.CommandResponse{
		EntryID: entry.ID,
		Text:    loadingText,
		Action:  entity.ActionNone,
	}, nil
}

func (s *assistantService) resolveLookup(ctx context.Context, entryID, person, command string) {
	summary := s.cachedSummary(ctx, person)

	var finalText string
	if summary != nil {
		finalText = fmt.Sprintf("Here's what I found: %s. %s", summary.Title, firstSentences(summary.Extract, 2))
	} else {
		finalText = respLookupFailed
	}

	s.replaceEntry(ctx, entryID, finalText)
	s.speak(ctx, finalText)
	s.broadcastAction(entity.SideEffect{Type: entity.ActionSearch, Target: searchURL(command)})
}

// cachedSummary reads through the Redis cache; the engine works fine
// without it, a miss or a broken cache degrades to a direct lookup.
func (s *assistantService) cachedSummary(ctx context.Context, person string) *wikipedia.Summary {
	if cached, err := s.redis.GetSummary(ctx, person); err == nil {
		var summary wikipedia.Summary
		if err := jsoniter.UnmarshalFromString(cached, &summary); err == nil {
			return &summary
		}
	} else if !errors.Is(err, redisPkg.ErrCacheMiss) {
		log.WithRequestID(ctx).WithField("entity", person).
			Debug("Summary cache unavailable, falling through to lookup")
	}

	summary := s.wikipedia.FetchSummary(ctx, person)
	if summary == nil {
		return nil
	}

	if payload, err := jsoniter.MarshalToString(summary); err == nil {
		if err := s.redis.SetSummary(ctx, person, payload, s.config.SummaryCacheTTL); err != nil {
			log.WithRequestID(ctx).WithField("entity", person).
				Debug("Failed to cache summary")
		}
	}

	return summary
}

// firstSentences keeps the leading n sentences of an extract, splitting on
// the literal dot the way the response format expects.
func firstSentences(extract string, n int) string {
	parts := strings.Split(extract, ".")
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.Join(parts, ".") + "."
}
