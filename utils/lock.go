package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RoomLocker serialises admission-then-write per room. Unlock must be called
// exactly once after a successful Lock.
type RoomLocker interface {
	Lock(ctx context.Context, roomID string) (unlock func(), err error)
}

// LocalRoomLocker holds one single-slot semaphore per room in process memory.
type LocalRoomLocker struct {
	mu    sync.Mutex
	rooms map[string]chan struct{}
}

func NewLocalRoomLocker() *LocalRoomLocker {
	return &LocalRoomLocker{rooms: make(map[string]chan struct{})}
}

func (l *LocalRoomLocker) sem(roomID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.rooms[roomID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.rooms[roomID] = ch
	}
	return ch
}

func (l *LocalRoomLocker) Lock(ctx context.Context, roomID string) (func(), error) {
	ch := l.sem(roomID)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for room %s: %w", roomID, ctx.Err())
	}
}

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// renewScript resets the TTL only if the key still holds our token.
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisRoomLocker is a SET NX lock with a TTL, for several instances sharing one
// database. While held, the TTL is renewed in the background so a slow write
// keeps the room; a crashed holder loses it after one TTL.
type RedisRoomLocker struct {
	Client *redis.Client
	TTL    time.Duration
	// Retry is the pause between acquisition attempts.
	Retry time.Duration
	// Renew is the heartbeat period. Zero means a third of TTL.
	Renew time.Duration
	// OnLost is called at most once per hold, when a renewal or the release
	// finds the lock no longer ours.
	OnLost func(roomID string)
}

func NewRedisRoomLocker(client *redis.Client) *RedisRoomLocker {
	return &RedisRoomLocker{Client: client, TTL: RoomLockTTL, Retry: 25 * time.Millisecond}
}

func (l *RedisRoomLocker) Lock(ctx context.Context, roomID string) (func(), error) {
	key := RoomLockPrefix + roomID
	token := uuid.New().String()

	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire room lock %s: %w", roomID, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for room %s: %w", roomID, ctx.Err())
		case <-time.After(l.Retry):
		}
	}

	var lostOnce sync.Once
	lost := func() {
		lostOnce.Do(func() {
			if l.OnLost != nil {
				l.OnLost(roomID)
			}
		})
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	go l.heartbeat(key, token, stop, done, lost)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			n, err := releaseScript.Run(ctx, l.Client, []string{key}, token).Int()
			if err != nil || n == 0 {
				lost()
			}
		})
	}, nil
}

// heartbeat extends the key's TTL until stop closes. It gives up once the key
// holds another token or has expired; transient errors are retried next tick.
func (l *RedisRoomLocker) heartbeat(key, token string, stop <-chan struct{}, done chan<- struct{}, lost func()) {
	defer close(done)
	period := l.Renew
	if period <= 0 {
		period = l.TTL / 3
	}
	if period <= 0 {
		period = time.Millisecond
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), period)
			n, err := renewScript.Run(ctx, l.Client, []string{key}, token, l.TTL.Milliseconds()).Int()
			cancel()
			if err == nil && n == 0 {
				lost()
				return
			}
		}
	}
}
