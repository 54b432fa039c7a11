package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// AlbumRepository 定义专辑相关的存储操作接口
type AlbumRepository interface {
	// CreateAlbum 创建新专辑并加入创作者的 albums 索引
	CreateAlbum(ctx context.Context, album *model.Album) error

	// GetAlbum 根据名称、发行年份和创作者获取专辑
	GetAlbum(ctx context.Context, key model.AlbumKey) (*model.Album, error)

	// GetAlbumsByAuthor 获取创作者的所有专辑
	GetAlbumsByAuthor(ctx context.Context, author string) ([]*model.Album, error)
}

// RedisAlbumRepository Redis实现的专辑仓库
type RedisAlbumRepository struct {
	client redis.Cmdable
}

// NewRedisAlbumRepository 创建新的Redis专辑仓库实例
func NewRedisAlbumRepository(client redis.Cmdable) *RedisAlbumRepository {
	return &RedisAlbumRepository{client: client}
}

// CreateAlbum 创建新专辑
func (r *RedisAlbumRepository) CreateAlbum(ctx context.Context, album *model.Album) error {
	author := model.AuthorKey{User: album.Author}
	return writeRecord(ctx, r.client, album.Key().String(), album.Fields(), author.AlbumsIndex())
}

// GetAlbum 获取专辑，不存在时返回 nil
func (r *RedisAlbumRepository) GetAlbum(ctx context.Context, key model.AlbumKey) (*model.Album, error) {
	rec, err := fetchRecord(ctx, r.client, key.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.AlbumFromRecord(rec), nil
}

// GetAlbumsByAuthor 获取创作者的所有专辑
func (r *RedisAlbumRepository) GetAlbumsByAuthor(ctx context.Context, author string) ([]*model.Album, error) {
	recs, err := fetchIndex(ctx, r.client, model.AuthorKey{User: author}.AlbumsIndex())
	if err != nil {
		return nil, err
	}

	albums := make([]*model.Album, 0, len(recs))
	for _, rec := range recs {
		albums = append(albums, model.AlbumFromRecord(rec))
	}
	return albums, nil
}
