package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-redis/redis/v8"
)

// RankStore keeps the revenue ranking across users.
type RankStore interface {
	Report(ctx context.Context, userID int, revenue float64) error
	Rank(ctx context.Context, userID int) (int, error)
	Revenue(ctx context.Context, userID int) (float64, bool, error)
}

const revenueKey = "leaderboard:revenue"

// RedisRanks stores the ranking in a Redis sorted set.
type RedisRanks struct {
	client *redis.Client
}

// OpenRedis connects and pings before first use.
func OpenRedis(ctx context.Context, addr, password string, db int) (*RedisRanks, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisRanks{client: client}, nil
}

func (r *RedisRanks) Report(ctx context.Context, userID int, revenue float64) error {
	return r.client.ZAdd(ctx, revenueKey, &redis.Z{
		Score:  revenue,
		Member: member(userID),
	}).Err()
}

func (r *RedisRanks) Rank(ctx context.Context, userID int) (int, error) {
	rank, err := r.client.ZRevRank(ctx, revenueKey, member(userID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(rank) + 1, nil
}

func (r *RedisRanks) Revenue(ctx context.Context, userID int) (float64, bool, error) {
	score, err := r.client.ZScore(ctx, revenueKey, member(userID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}

func (r *RedisRanks) Close() error {
	return r.client.Close()
}

func member(userID int) string {
	return fmt.Sprintf("user:%d", userID)
}

// MemoryRanks is the in-process fallback when Redis is not configured.
type MemoryRanks struct {
	mu       sync.RWMutex
	revenues map[int]float64
}

func NewMemoryRanks() *MemoryRanks {
	return &MemoryRanks{revenues: make(map[int]float64)}
}

func (m *MemoryRanks) Report(_ context.Context, userID int, revenue float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revenues[userID] = revenue
	return nil
}

func (m *MemoryRanks) Rank(_ context.Context, userID int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	own, ok := m.revenues[userID]
	if !ok {
		return 0, nil
	}
	scores := make([]float64, 0, len(m.revenues))
	for _, v := range m.revenues {
		scores = append(scores, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
	for i, v := range scores {
		if v == own {
			return i + 1, nil
		}
	}
	return 0, nil
}

func (m *MemoryRanks) Revenue(_ context.Context, userID int) (float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.revenues[userID]
	return v, ok, nil
}
