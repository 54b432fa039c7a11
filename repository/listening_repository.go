package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// ListeningRepository defines the operations for listening history.
type ListeningRepository interface {
	CreateListening(ctx context.Context, listening *model.Listening) error
	GetListening(ctx context.Context, key model.ListeningKey) (*model.Listening, error)
	GetAllListeningsByUser(ctx context.Context, login string) ([]*model.Listening, error)
	GetAllListeningsByDevice(ctx context.Context, macAddress string) ([]*model.Listening, error)
	GetAllListeningsByTrack(ctx context.Context, track model.TrackKey) ([]*model.Listening, error)
}

// RedisListeningRepository implements ListeningRepository on Redis hashes.
type RedisListeningRepository struct {
	client redis.Cmdable
}

// NewRedisListeningRepository creates a new listening repository.
func NewRedisListeningRepository(client redis.Cmdable) *RedisListeningRepository {
	return &RedisListeningRepository{client: client}
}

// CreateListening writes the listening and indexes it under the track, the
// user and the device, in that order.
func (r *RedisListeningRepository) CreateListening(ctx context.Context, listening *model.Listening) error {
	key := listening.Key()
	return writeRecord(ctx, r.client, key.String(), listening.Fields(),
		key.Track.ListeningsIndex(),
		model.UserKey{Login: listening.UserLogin}.ListeningsIndex(),
		model.DeviceKey{MACAddress: listening.DeviceMACAddress}.ListeningsIndex(),
	)
}

// GetListening retrieves a listening. It returns nil when it does not exist.
func (r *RedisListeningRepository) GetListening(ctx context.Context, key model.ListeningKey) (*model.Listening, error) {
	rec, err := fetchRecord(ctx, r.client, key.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.ListeningFromRecord(rec), nil
}

func (r *RedisListeningRepository) GetAllListeningsByUser(ctx context.Context, login string) ([]*model.Listening, error) {
	return r.listeningsIn(ctx, model.UserKey{Login: login}.ListeningsIndex())
}

func (r *RedisListeningRepository) GetAllListeningsByDevice(ctx context.Context, macAddress string) ([]*model.Listening, error) {
	return r.listeningsIn(ctx, model.DeviceKey{MACAddress: macAddress}.ListeningsIndex())
}

func (r *RedisListeningRepository) GetAllListeningsByTrack(ctx context.Context, track model.TrackKey) ([]*model.Listening, error) {
	return r.listeningsIn(ctx, track.ListeningsIndex())
}

func (r *RedisListeningRepository) listeningsIn(ctx context.Context, index string) ([]*model.Listening, error) {
	recs, err := fetchIndex(ctx, r.client, index)
	if err != nil {
		return nil, err
	}

	listenings := make([]*model.Listening, 0, len(recs))
	for _, rec := range recs {
		listenings = append(listenings, model.ListeningFromRecord(rec))
	}
	return listenings, nil
}
