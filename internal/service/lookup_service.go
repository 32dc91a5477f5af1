package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/model"
	"github.com/registra-edu/registra-backend/internal/repository"
)

const lookupCachePrefix = "lookup:domain:"

// LookupService serves lookup domain options with a best-effort Redis
// cache in front of the table. Lookup rows change rarely and back every
// dropdown in the admin UI, so a short TTL removes most of the reads.
type LookupService struct {
	repo *repository.LookupRepository
	rdb  *redis.Client
	ttl  time.Duration
	log  zerolog.Logger
}

// NewLookupService creates a new LookupService.
func NewLookupService(repo *repository.LookupRepository, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *LookupService {
	return &LookupService{
		repo: repo,
		rdb:  rdb,
		ttl:  ttl,
		log:  log.With().Str("component", "lookup_service").Logger(),
	}
}

// ActiveByDomain lists the active options of one lookup domain. Cache
// failures fall through to the database and are only logged.
func (s *LookupService) ActiveByDomain(ctx context.Context, domain string) ([]model.LookupOption, error) {
	key := lookupCachePrefix + domain

	if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var options []model.LookupOption
		if json.Unmarshal(raw, &options) == nil {
			return options, nil
		}
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Str("domain", domain).Msg("Lookup cache read failed")
	}

	options, err := s.repo.ActiveByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(options); err == nil {
		if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
			s.log.Warn().Err(err).Str("domain", domain).Msg("Lookup cache write failed")
		}
	}
	return options, nil
}
