package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSessionTTL bounds how long an idle session's overlays live.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore keeps per-session view counts and bookmark flags in Redis so
// that separate CLI invocations sharing a session see the same overlays.
// It implements reconcile.ViewCounter and reconcile.BookmarkSet.
type SessionStore struct {
	rdb     *redis.Client
	session string
	ttl     time.Duration
}

func NewSessionStore(rdb *redis.Client, session string, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if session == "" {
		session = "default"
	}
	return &SessionStore{rdb: rdb, session: session, ttl: ttl}
}

func viewsKey(session string) string {
	return fmt.Sprintf("newsroom:session:%s:views", session)
}

func bookmarksKey(session string) string {
	return fmt.Sprintf("newsroom:session:%s:bookmarks", session)
}

// Session returns the session identifier.
func (s *SessionStore) Session() string { return s.session }

// Increment bumps the view counter of id by one and refreshes the TTL.
func (s *SessionStore) Increment(ctx context.Context, id int) (int64, error) {
	key := viewsKey(s.session)
	pipe := s.rdb.TxPipeline()
	incr := pipe.HIncrBy(ctx, key, strconv.Itoa(id), 1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *SessionStore) Count(ctx context.Context, id int) (int64, error) {
	n, err := s.rdb.HGet(ctx, viewsKey(s.session), strconv.Itoa(id)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (s *SessionStore) Counts(ctx context.Context) (map[int]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, viewsKey(s.session)).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[int]int64, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[id] = n
	}
	return out, nil
}

// toggleScript removes ARGV[1] from the set if present, otherwise adds it
// and refreshes the TTL (ARGV[2] seconds). Returns 1 when now a member.
var toggleScript = redis.NewScript(`
if redis.call('SREM', KEYS[1], ARGV[1]) == 1 then
	return 0
end
redis.call('SADD', KEYS[1], ARGV[1])
redis.call('EXPIRE', KEYS[1], ARGV[2])
return 1
`)

// Toggle flips the bookmark flag of id and returns the new state. The flip
// runs server-side, so concurrent toggles of one session never both add.
func (s *SessionStore) Toggle(ctx context.Context, id int) (bool, error) {
	ttl := int64(s.ttl / time.Second)
	if ttl < 1 {
		ttl = 1
	}
	n, err := toggleScript.Run(ctx, s.rdb, []string{bookmarksKey(s.session)}, strconv.Itoa(id), ttl).Int64()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *SessionStore) IsBookmarked(ctx context.Context, id int) (bool, error) {
	return s.rdb.SIsMember(ctx, bookmarksKey(s.session), strconv.Itoa(id)).Result()
}

func (s *SessionStore) All(ctx context.Context) (map[int]bool, error) {
	members, err := s.rdb.SMembers(ctx, bookmarksKey(s.session)).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[int]bool, len(members))
	for _, m := range members {
		if id, err := strconv.Atoi(m); err == nil {
			out[id] = true
		}
	}
	return out, nil
}

// Reset drops both overlays of the session.
func (s *SessionStore) Reset(ctx context.Context) error {
	return s.rdb.Del(ctx, viewsKey(s.session), bookmarksKey(s.session)).Err()
}
