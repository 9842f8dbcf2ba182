package nlp

import (
	"math/rand"
	"strings"
	"time"
)

// Matcher holds the static command directories and answers the three
// classification questions the interpreter asks, in its priority order:
// is this a known site, does any intent trigger match, is a known entity
// mentioned. Table order is match-priority order throughout.
type Matcher struct {
	intents  []Intent
	sites    []SiteEntry
	siteURLs map[string]string
	entities []string
	now      func() time.Time
	intn     func(n int) int
}

type MatcherOption func(*Matcher)

// WithNow overrides the clock used by time-dependent response templates.
func WithNow(now func() time.Time) MatcherOption {
	return func(m *Matcher) {
		m.now = now
	}
}

// WithIntn overrides the randomness source used for response selection.
func WithIntn(intn func(n int) int) MatcherOption {
	return func(m *Matcher) {
		m.intn = intn
	}
}

func WithIntents(intents []Intent) MatcherOption {
	return func(m *Matcher) {
		m.intents = intents
	}
}

func WithSites(sites []SiteEntry) MatcherOption {
	return func(m *Matcher) {
		m.setSites(sites)
	}
}

func WithEntities(entities []string) MatcherOption {
	return func(m *Matcher) {
		m.entities = entities
	}
}

func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		intents:  defaultIntents(),
		entities: defaultEntities(),
		now:      time.Now,
		intn:     rand.Intn,
	}
	m.setSites(defaultSites())

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Matcher) setSites(sites []SiteEntry) {
	m.sites = sites
	m.siteURLs = make(map[string]string, len(sites))
	for _, s := range sites {
		m.siteURLs[s.Alias] = s.URL
	}
}

// MatchIntent scans the intent table in order and returns the first intent
// with any trigger contained in the normalized text. Ties go to table
// order, not trigger specificity.
func (m *Matcher) MatchIntent(normalized string) (Intent, bool) {
	for _, intent := range m.intents {
		for _, trigger := range intent.Triggers {
			if strings.Contains(normalized, trigger) {
				return intent, true
			}
		}
	}
	return Intent{}, false
}

// PickResponse selects one of the intent's reply variants uniformly at
// random and renders it against the current clock.
func (m *Matcher) PickResponse(intent Intent) string {
	tmpl := intent.Responses[m.intn(len(intent.Responses))]
	return tmpl(m.now())
}

// RenderAll renders every variant of an intent at the given instant.
func (m *Matcher) RenderAll(intent Intent, now time.Time) []string {
	out := make([]string, 0, len(intent.Responses))
	for _, tmpl := range intent.Responses {
		out = append(out, tmpl(now))
	}
	return out
}

// LookupSite resolves an already-normalized alias to its URL.
func (m *Matcher) LookupSite(alias string) (string, bool) {
	url, ok := m.siteURLs[alias]
	return url, ok
}

// MatchEntity returns the first directory entity contained in the
// normalized text, in directory order.
func (m *Matcher) MatchEntity(normalized string) (string, bool) {
	for _, entity := range m.entities {
		if strings.Contains(normalized, entity) {
			return entity, true
		}
	}
	return "", false
}

func (m *Matcher) Sites() []SiteEntry {
	return m.sites
}

func (m *Matcher) Entities() []string {
	return m.entities
}

func (m *Matcher) Intents() []Intent {
	return m.intents
}

func (m *Matcher) Now() time.Time {
	return m.now()
}
