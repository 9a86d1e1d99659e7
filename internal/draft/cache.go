// Package draft keeps unsynced session edits. Clients push their local
// draft of a workout together with the timestamp of its last edit; on
// session load the stored draft is weighed against the server state and
// the fresher side wins.
package draft

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/veldrin/ironlog/pkg/entity"
)

// Snapshot is a view of a session's composition at some moment.
type Snapshot struct {
	UpdatedAt time.Time              `json:"updated_at"`
	Exercises []entity.ExerciseDraft `json:"exercises"`
}

const defaultTTLSeconds = 60 * 60 * 24 * 7

type Cache struct {
	store *freecache.Cache
	ttl   int
}

// New builds a draft cache with sizeBytes of backing memory. Entries expire
// after a week; a draft that old lost the freshness race anyway.
func New(sizeBytes int) *Cache {
	return &Cache{
		store: freecache.NewCache(sizeBytes),
		ttl:   defaultTTLSeconds,
	}
}

func (c *Cache) Save(uid, workoutID uuid.UUID, snap *Snapshot) error {
	if snap == nil {
		return errors.New("saving nil draft snapshot")
	}
	raw, err := sonic.Marshal(snap)
	if err != nil {
		return errors.New("marshalling draft snapshot error: " + err.Error())
	}
	if err = c.store.Set(key(uid, workoutID), raw, c.ttl); err != nil {
		return errors.New("storing draft snapshot error: " + err.Error())
	}
	return nil
}

// Load returns the stored draft, or nil when none exists.
func (c *Cache) Load(uid, workoutID uuid.UUID) (*Snapshot, error) {
	raw, err := c.store.Get(key(uid, workoutID))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.New("reading draft snapshot error: " + err.Error())
	}
	var snap Snapshot
	if err = sonic.Unmarshal(raw, &snap); err != nil {
		return nil, errors.New("unmarshalling draft snapshot error: " + err.Error())
	}
	return &snap, nil
}

func (c *Cache) Drop(uid, workoutID uuid.UUID) {
	c.store.Del(key(uid, workoutID))
}

// Resolve picks between a local draft and the server state. The local draft
// wins only when it is strictly newer; on a timestamp tie the server wins.
func Resolve(local, server *Snapshot) *Snapshot {
	if local == nil {
		return server
	}
	if server == nil {
		return local
	}
	if local.UpdatedAt.After(server.UpdatedAt) {
		return local
	}
	return server
}

func key(uid, workoutID uuid.UUID) []byte {
	k := make([]byte, 0, 32)
	k = append(k, uid[:]...)
	k = append(k, workoutID[:]...)
	return k
}
