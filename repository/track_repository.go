package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// TrackRepository defines the operations for managing tracks.
type TrackRepository interface {
	CreateTrack(ctx context.Context, track *model.Track) error
	GetTrack(ctx context.Context, key model.TrackKey) (*model.Track, error)
	GetTracksByAlbum(ctx context.Context, album model.AlbumKey) ([]*model.Track, error)
}

// RedisTrackRepository implements TrackRepository on Redis hashes.
type RedisTrackRepository struct {
	client redis.Cmdable
}

// NewRedisTrackRepository creates a new track repository.
func NewRedisTrackRepository(client redis.Cmdable) *RedisTrackRepository {
	return &RedisTrackRepository{client: client}
}

// CreateTrack writes the track and adds it to its album's track index.
// The album itself is not required to exist.
func (r *RedisTrackRepository) CreateTrack(ctx context.Context, track *model.Track) error {
	key := track.Key()
	return writeRecord(ctx, r.client, key.String(), track.Fields(), key.Album().TracksIndex())
}

// GetTrack retrieves a track. It returns nil when the track does not exist.
func (r *RedisTrackRepository) GetTrack(ctx context.Context, key model.TrackKey) (*model.Track, error) {
	rec, err := fetchRecord(ctx, r.client, key.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.TrackFromRecord(rec), nil
}

// GetTracksByAlbum retrieves every track indexed under the album.
func (r *RedisTrackRepository) GetTracksByAlbum(ctx context.Context, album model.AlbumKey) ([]*model.Track, error) {
	recs, err := fetchIndex(ctx, r.client, album.TracksIndex())
	if err != nil {
		return nil, err
	}

	tracks := make([]*model.Track, 0, len(recs))
	for _, rec := range recs {
		tracks = append(tracks, model.TrackFromRecord(rec))
	}
	return tracks, nil
}
