package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// RateRepository defines the operations for track ratings.
type RateRepository interface {
	CreateRate(ctx context.Context, rate *model.Rate) error
	GetRate(ctx context.Context, key model.RateKey) (*model.Rate, error)
	GetAllRatingsByUser(ctx context.Context, login string) ([]*model.Rate, error)
	GetAllRatingsByTrack(ctx context.Context, track model.TrackKey) ([]*model.Rate, error)
}

// RedisRateRepository implements RateRepository on Redis hashes.
type RedisRateRepository struct {
	client redis.Cmdable
}

// NewRedisRateRepository creates a new rate repository.
func NewRedisRateRepository(client redis.Cmdable) *RedisRateRepository {
	return &RedisRateRepository{client: client}
}

// CreateRate validates the rating, writes the rate and indexes it under both
// the track and the user. Nothing is written when validation fails.
func (r *RedisRateRepository) CreateRate(ctx context.Context, rate *model.Rate) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	key := rate.Key()
	user := model.UserKey{Login: rate.UserLogin}
	return writeRecord(ctx, r.client, key.String(), rate.Fields(),
		key.Track.RatingsIndex(),
		user.RatingsIndex(),
	)
}

// GetRate retrieves a rate. It returns nil when the rate does not exist.
func (r *RedisRateRepository) GetRate(ctx context.Context, key model.RateKey) (*model.Rate, error) {
	rec, err := fetchRecord(ctx, r.client, key.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.RateFromRecord(rec)
}

// GetAllRatingsByUser retrieves every rate left by the user.
func (r *RedisRateRepository) GetAllRatingsByUser(ctx context.Context, login string) ([]*model.Rate, error) {
	return r.ratingsIn(ctx, model.UserKey{Login: login}.RatingsIndex())
}

// GetAllRatingsByTrack retrieves every rate left on the track.
func (r *RedisRateRepository) GetAllRatingsByTrack(ctx context.Context, track model.TrackKey) ([]*model.Rate, error) {
	return r.ratingsIn(ctx, track.RatingsIndex())
}

func (r *RedisRateRepository) ratingsIn(ctx context.Context, index string) ([]*model.Rate, error) {
	recs, err := fetchIndex(ctx, r.client, index)
	if err != nil {
		return nil, err
	}

	rates := make([]*model.Rate, 0, len(recs))
	for _, rec := range recs {
		rate, err := model.RateFromRecord(rec)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}
