package assistantService

import (
	"context"
	"fmt"
	"time"

	"ProjectJarvis/internal/entity"
	"ProjectJarvis/pkg/audio"
	"ProjectJarvis/pkg/log"

	"github.com/google/uuid"
)

const (
	eventHistoryAppend  = "history_append"
	eventHistoryReplace = "history_replace"
	eventHistoryClear   = "history_clear"
	eventStatus         = "status"
	eventSpeak          = "speak"
	eventAction         = "action"
	eventDevice         = "device"
)

// appendEntry writes a new conversation entry and pushes it to every
// connected presentation client. The returned entry carries the ULID later
// replacements are correlated by.
func (s *assistantService) appendEntry(ctx context.Context, userText, assistantText string) (entity.ConversationEntry, error) {
	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.ConversationEntry{}, err
	}

	entry := entity.ConversationEntry{
		ID:            id,
		UserText:      userText,
		AssistantText: assistantText,
		Timestamp:     time.Now(),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return entity.ConversationEntry{}, err
	}

	s.hub.Broadcast(eventHistoryAppend, entry)

	return entry, nil
}

// replaceEntry resolves an optimistic entry by its id. A missing id means
// the log was cleared while the lookup was in flight; that is logged and
// absorbed, never applied to some other entry.
func (s *assistantService) replaceEntry(ctx context.Context, id, assistantText string) {
	now := time.Now()

	if err := s.repo.ReplaceByID(ctx, id, assistantText, now); err != nil {
		log.WithRequestID(ctx).WithField("entry_id", id).
			Warn("Skipping replacement, optimistic entry is gone")
		return
	}

	s.hub.Broadcast(eventHistoryReplace, map[string]interface{}{
		"id":             id,
		"assistant_text": assistantText,
		"timestamp":      now,
	})
}

// speak pushes a speak event to the output device. Any utterance still
// being synthesized is cancelled first, so at most one is audible at a
// time. When server-side TTS is configured the event is re-emitted with a
// presigned audio URL once synthesis finishes.
func (s *assistantService) speak(ctx context.Context, text string) {
	if text == "" {
		return
	}

	s.speechMutex.Lock()
	if s.speechCancel != nil {
		s.speechCancel()
	}
	speechCtx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	s.speechCancel = cancel
	s.speechGen++
	gen := s.speechGen
	s.speechMutex.Unlock()

	params := audio.DefaultSpeechParams()

	s.hub.Broadcast(eventSpeak, map[string]interface{}{
		"text":   text,
		"params": params,
	})

	if !s.tts.Enabled() {
		cancel()
		return
	}

	go s.synthesize(speechCtx, gen, text, params)
}

func (s *assistantService) synthesize(ctx context.Context, gen uint64, text string, params audio.SpeechParams) {
	defer func() {
		s.speechMutex.Lock()
		// a newer utterance may own the cancel slot by now
		if s.speechGen == gen {
			s.speechCancel = nil
		}
		s.speechMutex.Unlock()
	}()

	if voices, err := s.tts.ListVoices(ctx); err == nil {
		params.Voice = audio.PickVoice(voices, "")
	}

	data, err := s.tts.GenerateAudio(ctx, text)
	if err != nil {
		log.WithRequestID(ctx).WithField("error", err.Error()).
			Warn("Speech synthesis failed, clients fall back to local synthesis")
		return
	}

	fileName := fmt.Sprintf("speech/%s.mp3", uuid.NewString())
	location, err := s.s3Client.UploadFileFromBytes(fileName, data)
	if err != nil {
		log.WithRequestID(ctx).WithField("error", err.Error()).
			Warn("Failed to store synthesized speech")
		return
	}

	audioURL, err := s.s3Client.PresignUrl(location)
	if err != nil {
		log.WithRequestID(ctx).WithField("error", err.Error()).
			Warn("Failed to presign synthesized speech")
		return
	}

	select {
	case <-ctx.Done():
		// a newer utterance superseded this one
		return
	default:
	}

	s.hub.Broadcast(eventSpeak, map[string]interface{}{
		"text":      text,
		"params":    params,
		"audio_url": audioURL,
	})
}

func (s *assistantService) broadcastAction(effect entity.SideEffect) {
	if effect.Type == entity.ActionNone {
		return
	}
	s.hub.Broadcast(eventAction, effect)
}

func (s *assistantService) broadcastStatus() {
	s.hub.Broadcast(eventStatus, map[string]interface{}{
		"status":  s.session.Status.String(),
		"message": s.session.StatusMessage,
	})
}
