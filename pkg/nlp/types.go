package nlp

import "time"

// ResponseTemplate renders one reply variant. Templates that embed the
// current time or date are functions of the moment the command was
// interpreted, never of table construction time.
type ResponseTemplate func(now time.Time) string

// Static wraps a fixed reply string as a template.
func Static(text string) ResponseTemplate {
	return func(time.Time) string {
		return text
	}
}

type Intent struct {
	Name      string
	Triggers  []string
	Responses []ResponseTemplate
}

type SiteEntry struct {
	Alias string `json:"alias"`
	URL   string `json:"url"`
}

// MatchType reported by the dry-run classifier.
type MatchType string

const (
	MatchSiteOpen MatchType = "site_open"
	MatchIntent   MatchType = "intent"
	MatchEntity   MatchType = "entity"
	MatchFallback MatchType = "fallback"
	MatchEmpty    MatchType = "empty"
)
