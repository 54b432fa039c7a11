package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// DeviceRepository defines the interface for device data operations.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *model.Device) error
	GetDevice(ctx context.Context, macAddress string) (*model.Device, error)
}

type redisDeviceRepository struct {
	client redis.Cmdable
}

// NewRedisDeviceRepository creates a new redisDeviceRepository.
func NewRedisDeviceRepository(client redis.Cmdable) DeviceRepository {
	return &redisDeviceRepository{client: client}
}

func (r *redisDeviceRepository) CreateDevice(ctx context.Context, device *model.Device) error {
	return writeRecord(ctx, r.client, device.Key().String(), device.Fields())
}

func (r *redisDeviceRepository) GetDevice(ctx context.Context, macAddress string) (*model.Device, error) {
	rec, err := fetchRecord(ctx, r.client, model.DeviceKey{MACAddress: macAddress}.String())
	if err != nil || rec == nil {
		return nil, err
	}
	return model.DeviceFromRecord(rec), nil
}
