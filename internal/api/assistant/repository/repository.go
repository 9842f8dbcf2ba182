package assistantRepository

import (
	"sync"
	"time"

	"ProjectJarvis/internal/api/assistant"
	"ProjectJarvis/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Repository owns the conversation log. Storage is in-process memory: the
// log belongs to the running session and is not persisted. Replacement is
// by entry id, so a lookup that resolves after an interleaved append or
// clear can never overwrite the wrong entry.
type Repository interface {
	Append(ctx context.Context, entry entity.ConversationEntry) error
	ReplaceByID(ctx context.Context, id string, assistantText string, timestamp time.Time) error
	List(ctx context.Context, page, limit int) ([]entity.ConversationEntry, int, error)
	Last(ctx context.Context) (entity.ConversationEntry, bool)
	Count(ctx context.Context) int
	Clear(ctx context.Context) error
}

type repository struct {
	log     *logrus.Logger
	entries []entity.ConversationEntry
	mutex   sync.RWMutex
}

func New(log *logrus.Logger) Repository {
	return &repository{
		log:     log,
		entries: make([]entity.ConversationEntry, 0),
	}
}

func (r *repository) Append(ctx context.Context, entry entity.ConversationEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries = append(r.entries, entry)

	r.log.WithFields(logrus.Fields{
		"entry_id": entry.ID,
		"total":    len(r.entries),
	}).Debug("Appended conversation entry")

	return nil
}

// ReplaceByID overwrites the assistant text and timestamp of the entry with
// the given id, keeping its id and user text. The entry may have moved or
// disappeared since it was appended; a missing id is reported, not ignored.
func (r *repository) ReplaceByID(ctx context.Context, id string, assistantText string, timestamp time.Time) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].AssistantText = assistantText
			r.entries[i].Timestamp = timestamp
			return nil
		}
	}

	r.log.WithFields(logrus.Fields{
		"entry_id": id,
	}).Warn("Replace target no longer in conversation log")

	return assistant.ErrEntryNotFound
}

func (r *repository) List(ctx context.Context, page, limit int) ([]entity.ConversationEntry, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	total := len(r.entries)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	start := (page - 1) * limit
	if start >= total {
		return []entity.ConversationEntry{}, total, nil
	}

	end := start + limit
	if end > total {
		end = total
	}

	out := make([]entity.ConversationEntry, end-start)
	copy(out, r.entries[start:end])

	return out, total, nil
}

func (r *repository) Last(ctx context.Context) (entity.ConversationEntry, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if len(r.entries) == 0 {
		return entity.ConversationEntry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

func (r *repository) Count(ctx context.Context) int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.entries)
}

func (r *repository) Clear(ctx context.Context) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries = r.entries[:0]
	r.log.Debug("Cleared conversation log")

	return nil
}
