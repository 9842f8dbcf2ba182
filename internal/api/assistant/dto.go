package assistant

import (
	"mime/multipart"

	"ProjectJarvis/internal/entity"
)

type InterpretRequest struct {
	Text string `json:"text" validate:"max=500"`
}

type InterpretAudioRequest struct {
	AudioFile *multipart.FileHeader `json:"audio_file" validate:"required"`
}

// DeviceEventRequest is one capture-device callback delivered over HTTP:
// a recognized utterance, a no-match, a device error, or end-of-session.
type DeviceEventRequest struct {
	Type       string  `json:"type" validate:"required,oneof=result nomatch error end"`
	Text       string  `json:"text,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Code       string  `json:"code,omitempty"`
}

type CommandResponse struct {
	EntryID  string            `json:"entry_id,omitempty"`
	Text     string            `json:"text"`
	Action   entity.ActionType `json:"action"`
	Target   string            `json:"target,omitempty"`
	AudioURL string            `json:"audio_url,omitempty"`
}

type SessionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type StatusResponse struct {
	Status    string `json:"status"`
	Listening bool   `json:"listening"`
	Message   string `json:"message,omitempty"`
	Entries   int    `json:"entries"`
}

type HistoryResponse struct {
	Entries []entity.ConversationEntry `json:"entries"`
	Page    int                        `json:"page"`
	Limit   int                        `json:"limit"`
	Total   int                        `json:"total"`
}

type SiteListing struct {
	Alias string `json:"alias"`
	URL   string `json:"url"`
}

type SitesResponse struct {
	Sites []SiteListing `json:"sites"`
	Total int           `json:"total"`
}

type NLPTestRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

// NLPTestResponse is a dry-run classification: what the interpreter would
// decide, with no speech, no history write, and no side-effect dispatch.
type NLPTestResponse struct {
	Input      string            `json:"input"`
	Normalized string            `json:"normalized"`
	MatchType  string            `json:"match_type"`
	Intent     string            `json:"intent,omitempty"`
	Site       string            `json:"site,omitempty"`
	Entity     string            `json:"entity,omitempty"`
	Action     entity.ActionType `json:"action"`
	Target     string            `json:"target,omitempty"`
}
