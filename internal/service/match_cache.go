package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"careerscope/internal/domain"
)

// MatchCache cachea matches por (fingerprint de perfil, career id).
// Como la clave deriva del contenido del perfil, cualquier mutacion
// cambia la clave: la invalidacion es exacta por construccion.
type MatchCache interface {
	Get(fingerprint string, careerID int) (domain.Match, bool)
	Set(fingerprint string, careerID int, match domain.Match)
}

type memoryMatchCache struct {
	mu      sync.Mutex
	items   map[string]domain.Match
	maxSize int
}

const defaultMatchCacheSize = 4096

// NewMemoryMatchCache crea un cache en memoria con tope de entradas.
func NewMemoryMatchCache(maxSize int) MatchCache {
	if maxSize <= 0 {
		maxSize = defaultMatchCacheSize
	}
	return &memoryMatchCache{
		items:   make(map[string]domain.Match),
		maxSize: maxSize,
	}
}

func matchCacheKey(fingerprint string, careerID int) string {
	return fmt.Sprintf("%s:%d", fingerprint, careerID)
}

func (c *memoryMatchCache) Get(fingerprint string, careerID int) (domain.Match, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	match, ok := c.items[matchCacheKey(fingerprint, careerID)]
	return match, ok
}

func (c *memoryMatchCache) Set(fingerprint string, careerID int, match domain.Match) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Las claves viejas quedan huerfanas tras mutar el perfil; ante el
	// tope se descarta todo en lugar de rastrear recencia.
	if len(c.items) >= c.maxSize {
		c.items = make(map[string]domain.Match)
	}
	c.items[matchCacheKey(fingerprint, careerID)] = match
}

type redisMatchCache struct {
	client redisKV
	prefix string
	ttl    time.Duration
}

// NewRedisMatchCache crea un cache respaldado en redis. El TTL solo
// acota entradas huerfanas: la coherencia la da la clave por contenido.
func NewRedisMatchCache(client *redis.Client, ttl time.Duration) MatchCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisMatchCache{
		client: client,
		prefix: "match:",
		ttl:    ttl,
	}
}

func (c *redisMatchCache) Get(fingerprint string, careerID int) (domain.Match, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+matchCacheKey(fingerprint, careerID)).Bytes()
	if err != nil {
		return domain.Match{}, false
	}
	var match domain.Match
	if err := json.Unmarshal(raw, &match); err != nil {
		return domain.Match{}, false
	}
	return match, true
}

func (c *redisMatchCache) Set(fingerprint string, careerID int, match domain.Match) {
	raw, err := json.Marshal(match)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	// Un fallo al cachear no es fatal: el proximo Score recalcula.
	_ = c.client.Set(ctx, c.prefix+matchCacheKey(fingerprint, careerID), raw, c.ttl).Err()
}
