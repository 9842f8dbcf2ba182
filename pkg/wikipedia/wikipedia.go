package wikipedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Summary is the subset of the REST page-summary payload the assistant
// uses. Both fields are required; a payload missing either is not-found.
type Summary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

type ItfWikipedia interface {
	FetchSummary(ctx context.Context, name string) *Summary
}

type wikipediaClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) ItfWikipedia {
	baseURL := os.Getenv("WIKIPEDIA_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &wikipediaClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// FetchSummary issues a single GET against the summary endpoint. Every
// failure mode - network error, non-200, malformed JSON, missing field -
// collapses to nil; the caller treats nil uniformly as "no data found".
func (w *wikipediaClient) FetchSummary(ctx context.Context, name string) *Summary {
	endpoint := fmt.Sprintf("%s/page/summary/%s", w.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		w.log.WithFields(logrus.Fields{
			"entity": name,
			"error":  err.Error(),
		}).Warn("Failed to build summary request")
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.WithFields(logrus.Fields{
			"entity": name,
			"error":  err.Error(),
		}).Warn("Summary request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.log.WithFields(logrus.Fields{
			"entity": name,
			"status": resp.StatusCode,
		}).Warn("Summary request returned non-OK status")
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		w.log.WithFields(logrus.Fields{
			"entity": name,
			"error":  err.Error(),
		}).Warn("Failed to read summary response")
		return nil
	}

	var summary Summary
	if err := jsoniter.Unmarshal(body, &summary); err != nil {
		w.log.WithFields(logrus.Fields{
			"entity": name,
			"error":  err.Error(),
		}).Warn("Failed to decode summary response")
		return nil
	}

	if summary.Title == "" || summary.Extract == "" {
		w.log.WithFields(logrus.Fields{
			"entity": name,
		}).Debug("Summary response missing title or extract")
		return nil
	}

	return &summary
}
