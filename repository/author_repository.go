package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// AuthorRepository 定义创作者相关的存储操作接口
type AuthorRepository interface {
	// CreateAuthor 创建创作者并加入用户的 authors 索引
	CreateAuthor(ctx context.Context, author *model.Author) error

	// GetAuthor 根据用户登录名获取创作者
	GetAuthor(ctx context.Context, user string) (*model.Author, error)

	// GetAuthorsByUser 获取用户名下的所有创作者
	GetAuthorsByUser(ctx context.Context, login string) ([]*model.Author, error)

	// CreateAuthorInfo 创建或覆盖创作者扩展资料
	CreateAuthorInfo(ctx context.Context, info *model.AuthorInfo) error

	// GetAuthorInfo 获取创作者扩展资料
	GetAuthorInfo(ctx context.Context, author string) (*model.AuthorInfo, error)
}

// RedisAuthorRepository Redis实现的创作者仓库
type RedisAuthorRepository struct {
	client redis.Cmdable
}

// NewRedisAuthorRepository 创建新的Redis创作者仓库实例
func NewRedisAuthorRepository(client redis.Cmdable) *RedisAuthorRepository {
	return &RedisAuthorRepository{client: client}
}

// CreateAuthor 创建创作者
func (r *RedisAuthorRepository) CreateAuthor(ctx context.Context, author *model.Author) error {
	owner := model.UserKey{Login: author.User}
	return writeRecord(ctx, r.client, author.Key().String(), author.Fields(), owner.AuthorsIndex())
}

// GetAuthor 获取创作者，不存在时返回 nil
func (r *RedisAuthorRepository) GetAuthor(ctx context.Context, user string) (*model.Author, error) {
	rec, err := fetchRecord(ctx, r.client, model.AuthorKey{User: user}.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.AuthorFromRecord(rec), nil
}

// GetAuthorsByUser 获取用户名下的所有创作者
func (r *RedisAuthorRepository) GetAuthorsByUser(ctx context.Context, login string) ([]*model.Author, error) {
	recs, err := fetchIndex(ctx, r.client, model.UserKey{Login: login}.AuthorsIndex())
	if err != nil {
		return nil, err
	}

	authors := make([]*model.Author, 0, len(recs))
	for _, rec := range recs {
		authors = append(authors, model.AuthorFromRecord(rec))
	}
	return authors, nil
}

// CreateAuthorInfo 创建创作者扩展资料，不建立索引
func (r *RedisAuthorRepository) CreateAuthorInfo(ctx context.Context, info *model.AuthorInfo) error {
	return writeRecord(ctx, r.client, info.Key().String(), info.Fields())
}

// GetAuthorInfo 获取创作者扩展资料，不存在时返回 nil
func (r *RedisAuthorRepository) GetAuthorInfo(ctx context.Context, author string) (*model.AuthorInfo, error) {
	rec, err := fetchRecord(ctx, r.client, model.AuthorInfoKey{Author: author}.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.AuthorInfoFromRecord(author, rec), nil
}
