// Package datasource is the resilient data-access layer. Every public method
// resolves to a value: live endpoints degrade to nil or an empty list, content
// endpoints degrade to the mock fixtures.
package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/cache"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/config"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/gateway"
	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/logger"
)

var (
	errNoTarget = errors.New("no gateway configured")
	errEmpty    = errors.New("empty response")
)

// Deps are the collaborators of a Service.
type Deps struct {
	// Backend is the live remote service.
	Backend gateway.Doer
	// SameOrigin serves the mock content routes.
	SameOrigin gateway.Doer
	// Cache defaults to a fresh in-memory store.
	Cache  cache.Store
	Source config.DataSource
	Logger *zap.Logger
}

type Service struct {
	backend    gateway.Doer
	sameOrigin gateway.Doer
	cache      cache.Store
	source     config.DataSource
	logger     *zap.Logger
	flight     singleflight.Group
}

func New(d Deps) *Service {
	store := d.Cache
	if store == nil {
		store = cache.NewMemoryStore()
	}
	return &Service{
		backend:    d.Backend,
		sameOrigin: d.SameOrigin,
		cache:      store,
		source:     d.Source,
		logger:     logger.OrNop(d.Logger),
	}
}

// Demo reports whether content is served from the mock routes and fixtures.
func (s *Service) Demo() bool {
	return s.source != config.Live
}

// result keeps a failure distinct from an empty value until the public
// boundary converts it.
type result[T any] struct {
	value T
	err   error
}

func (r result[T]) ok() bool { return r.err == nil }

// fetchCached returns the live cache entry for key or runs fetch once for all
// concurrent callers, storing the encoded value for ttl on success.
func fetchCached[T any](ctx context.Context, s *Service, key string, ttl time.Duration, fetch func(context.Context) (T, error)) result[T] {
	if payload, hit := s.lookup(ctx, key); hit {
		var v T
		if err := json.Unmarshal(payload, &v); err == nil {
			return result[T]{value: v}
		}
		s.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	}

	// The shared fetch outlives any single caller; the gateway timeout bounds it.
	detached := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (any, error) {
		v, err := fetch(detached)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		s.store(detached, key, payload, ttl)
		return payload, nil
	})

	var shared singleflight.Result
	select {
	case <-ctx.Done():
		return result[T]{err: ctx.Err()}
	case shared = <-ch:
	}
	if shared.Err != nil {
		return result[T]{err: shared.Err}
	}

	// each caller decodes its own copy of the shared payload
	var v T
	if err := json.Unmarshal(shared.Val.([]byte), &v); err != nil {
		return result[T]{err: err}
	}
	return result[T]{value: v}
}

func fetchOnce[T any](ctx context.Context, fetch func(context.Context) (T, error)) result[T] {
	v, err := fetch(ctx)
	return result[T]{value: v, err: err}
}

func (s *Service) lookup(ctx context.Context, key string) ([]byte, bool) {
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return payload, ok
}

func (s *Service) store(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, payload, ttl); err != nil {
		s.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) storeValue(ctx context.Context, key string, v any, ttl time.Duration) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.store(ctx, key, payload, ttl)
}

// logFailure records a caught error at the public boundary.
func (s *Service) logFailure(op string, start time.Time, err error, fallback string) {
	s.logger.Warn("data access failed",
		zap.String("operation", op),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		zap.String("fallback", fallback),
		zap.Error(err),
	)
}

// fetchJSON decodes path from d, failing when no gateway is configured.
func fetchJSON[T any](ctx context.Context, d gateway.Doer, path string, req *gateway.Request) (T, error) {
	if d == nil {
		var zero T
		return zero, errNoTarget
	}
	return gateway.Fetch[T](ctx, d, path, req)
}
