package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// ReferenceDataKey is the redis key holding the serialized reference data.
const ReferenceDataKey = "finance:reference_data"

// Client is the subset of redis commands the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ReferenceRepository serves reference lookups from redis and falls back to
// the wrapped repository on a miss. Redis failures are logged and never
// surface to callers.
type ReferenceRepository struct {
	next   portsrepo.ReferenceRepository
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ portsrepo.ReferenceRepository = (*ReferenceRepository)(nil)

// NewReferenceRepository wraps next with a redis cache.
func NewReferenceRepository(next portsrepo.ReferenceRepository, client Client, ttl time.Duration, logger *slog.Logger) *ReferenceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferenceRepository{next: next, client: client, ttl: ttl, logger: logger}
}

// NewClient connects to redis and pings it.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func (r *ReferenceRepository) ListReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	cached, err := r.client.Get(ctx, ReferenceDataKey).Result()
	if err == nil {
		var ref domain.ReferenceData
		if jsonErr := json.Unmarshal([]byte(cached), &ref); jsonErr == nil {
			return &ref, nil
		}
		r.logger.Warn("Discarding unreadable cached reference data", slog.String("key", ReferenceDataKey))
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Error("Redis GET failed", slog.String("key", ReferenceDataKey), slog.String("error", err.Error()))
	}

	ref, err := r.next.ListReferenceData(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ref)
	if err != nil {
		r.logger.Error("Failed to marshal reference data for caching", slog.String("error", err.Error()))
		return ref, nil
	}
	if err := r.client.Set(ctx, ReferenceDataKey, payload, r.ttl).Err(); err != nil {
		r.logger.Error("Redis SET failed", slog.String("key", ReferenceDataKey), slog.String("error", err.Error()))
	}
	return ref, nil
}

// Invalidate drops the cached reference data.
func (r *ReferenceRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, ReferenceDataKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate reference cache: %w", err)
	}
	return nil
}

func (r *ReferenceRepository) FindStatusByCode(ctx context.Context, code domain.StatusCode) (*domain.TransactionStatus, error) {
	ref, err := r.ListReferenceData(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range ref.Statuses {
		if st.Code == code {
			return &st, nil
		}
	}
	return nil, fmt.Errorf("status %s is not configured: %w", code, apperrors.ErrConfigurationMissing)
}

func (r *ReferenceRepository) FindStatusByID(ctx context.Context, statusID string) (*domain.TransactionStatus, error) {
	ref, err := r.ListReferenceData(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range ref.Statuses {
		if st.ID == statusID {
			return &st, nil
		}
	}
	return nil, fmt.Errorf("status %s: %w", statusID, apperrors.ErrNotFound)
}

func (r *ReferenceRepository) FindTypeByCode(ctx context.Context, code domain.TypeCode) (*domain.TransactionType, error) {
	ref, err := r.ListReferenceData(ctx)
	if err != nil {
		return nil, err
	}
	for _, tt := range ref.Types {
		if tt.Code == code {
			return &tt, nil
		}
	}
	return nil, fmt.Errorf("transaction type %s is not configured: %w", code, apperrors.ErrConfigurationMissing)
}

func (r *ReferenceRepository) FindTypeByID(ctx context.Context, typeID string) (*domain.TransactionType, error) {
	ref, err := r.ListReferenceData(ctx)
	if err != nil {
		return nil, err
	}
	for _, tt := range ref.Types {
		if tt.ID == typeID {
			return &tt, nil
		}
	}
	return nil, fmt.Errorf("transaction type %s: %w", typeID, apperrors.ErrNotFound)
}

func (r *ReferenceRepository) FindPersonTypeByCode(ctx context.Context, code domain.PersonTypeCode) (*domain.PersonType, error) {
	ref, err := r.ListReferenceData(ctx)
	if err != nil {
		return nil, err
	}
	for _, pt := range ref.PersonTypes {
		if pt.Code == code {
			return &pt, nil
		}
	}
	return nil, fmt.Errorf("person type %s is not configured: %w", code, apperrors.ErrConfigurationMissing)
}
