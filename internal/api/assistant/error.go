package assistant

import (
	"net/http"

	"ProjectJarvis/pkg/response"
)

var (
	ErrEntryNotFound       = response.NewError(http.StatusNotFound, "conversation entry not found")
	ErrInvalidDeviceEvent  = response.NewError(http.StatusBadRequest, "invalid device event")
	ErrInvalidAudioFile    = response.NewError(http.StatusBadRequest, "invalid audio file")
	ErrAudioFileTooLarge   = response.NewError(http.StatusBadRequest, "audio file too large")
	ErrTranscriptionFailed = response.NewError(http.StatusInternalServerError, "failed to transcribe audio")
)
