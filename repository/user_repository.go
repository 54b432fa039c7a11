package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, login string) (*model.User, error)
}

// redisUserRepository implements UserRepository for Redis.
type redisUserRepository struct {
	client redis.Cmdable
}

// NewRedisUserRepository creates a new redisUserRepository.
func NewRedisUserRepository(client redis.Cmdable) UserRepository {
	return &redisUserRepository{client: client}
}

// CreateUser writes the user record.
func (r *redisUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return writeRecord(ctx, r.client, user.Key().String(), user.Fields())
}

// GetUser retrieves a user by login. It returns nil when the user does not exist.
func (r *redisUserRepository) GetUser(ctx context.Context, login string) (*model.User, error) {
	rec, err := fetchRecord(ctx, r.client, model.UserKey{Login: login}.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.UserFromRecord(rec), nil
}
