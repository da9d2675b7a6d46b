package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"caesar_cipher/internal/model"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 2 * time.Hour

func cacheKey(fingerprint string) string {
	return fmt.Sprintf("recovery: %s", fingerprint)
}

// GetRecoveryFromCache returns nil, nil on a cache miss.
func (s *HttpServer) GetRecoveryFromCache(ctx context.Context, fingerprint string) (*model.Recovery, error) {
	v, err := s.cache.Get(ctx, cacheKey(fingerprint))
	if err == redis.Nil {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var rec model.Recovery
	err = json.Unmarshal([]byte(v), &rec)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *HttpServer) PutRecoveryToCache(ctx context.Context, rec *model.Recovery) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, cacheKey(rec.Fingerprint), data, cacheTTL)
}
