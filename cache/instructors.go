package cache

import (
	"context"
	"errors"
	"log"
	"time"

	courseModels "learnhub/models/course"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const instructorListKey = "curriculum:instructors"

// InstructorCache keeps the instructor list in Redis. A nil cache is valid and
// always misses, so callers need no Redis in development.
type InstructorCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Instructors is the process-wide cache, set up by Connect
var Instructors *InstructorCache

// Connect parses redisURL and installs the global cache. An empty URL disables caching.
func Connect(redisURL string, ttl time.Duration) error {
	if redisURL == "" {
		log.Println("[CACHE] REDIS_URL not set, instructor cache disabled")
		Instructors = nil
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return err
	}
	Instructors = NewInstructorCache(redis.NewClient(opts), ttl)
	return nil
}

func NewInstructorCache(client *redis.Client, ttl time.Duration) *InstructorCache {
	return &InstructorCache{client: client, ttl: ttl}
}

// Get returns the cached list and whether it was present
func (c *InstructorCache) Get(ctx context.Context) ([]courseModels.Instructor, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, instructorListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[CACHE] instructor list read failed: %v", err)
		}
		return nil, false
	}

	var instructors []courseModels.Instructor
	if err := sonic.Unmarshal(raw, &instructors); err != nil {
		log.Printf("[CACHE] instructor list decode failed: %v", err)
		return nil, false
	}
	return instructors, true
}

// Set stores the list for the configured TTL
func (c *InstructorCache) Set(ctx context.Context, instructors []courseModels.Instructor) {
	if c == nil {
		return
	}

	raw, err := sonic.Marshal(instructors)
	if err != nil {
		log.Printf("[CACHE] instructor list encode failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, instructorListKey, raw, c.ttl).Err(); err != nil {
		log.Printf("[CACHE] instructor list write failed: %v", err)
	}
}

// Close releases the Redis connection pool
func (c *InstructorCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
