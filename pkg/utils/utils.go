package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateAudioFile(file *multipart.FileHeader, maxSize int64, allowedExts []string) error
	SaveTempFile(file *multipart.FileHeader, pattern string) (string, error)
	RemoveTempFile(path string)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ValidateAudioFile(file *multipart.FileHeader, maxSize int64, allowedExts []string) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > maxSize {
		return errors.New("file size exceeds limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	for _, allowed := range allowedExts {
		if ext == allowed {
			return nil
		}
	}

	return errors.New("unsupported audio format")
}

// SaveTempFile copies an uploaded recording to a temp file and returns its
// path. The caller removes it when done.
func (u *utils) SaveTempFile(file *multipart.FileHeader, pattern string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

func (u *utils) RemoveTempFile(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
