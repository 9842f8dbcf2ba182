package entity

import (
	"time"
)

type ConversationEntry struct {
	ID            string    `json:"id"`
	UserText      string    `json:"user_text"`
	AssistantText string    `json:"assistant_text"`
	Timestamp     time.Time `json:"timestamp"`
}

type CaptureSession struct {
	Status          CaptureStatus `json:"status"`
	SilenceDeadline time.Time     `json:"silence_deadline,omitempty"`
	StatusMessage   string        `json:"status_message,omitempty"`
}

type CaptureStatus uint8

const (
	CaptureIdle      CaptureStatus = 0
	CaptureListening CaptureStatus = 1
	CaptureFinished  CaptureStatus = 2
)

var CaptureStatusMap = map[CaptureStatus]string{
	CaptureIdle:      "idle",
	CaptureListening: "listening",
	CaptureFinished:  "finished",
}

func (s CaptureStatus) String() string {
	return CaptureStatusMap[s]
}

func (s CaptureStatus) Value() uint8 {
	return uint8(s)
}

type ActionType string

const (
	ActionNone    ActionType = "none"
	ActionOpenURL ActionType = "open_url"
	ActionSearch  ActionType = "search"
)

// SideEffect is the external action a command resolves to, carried out by
// the presentation layer (open a site, launch a web search) rather than by
// the engine itself.
type SideEffect struct {
	Type   ActionType `json:"type"`
	Target string     `json:"target,omitempty"`
}
