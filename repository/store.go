package repository

import (
	"context"

	"catalogkv/model"

	"github.com/redis/go-redis/v9"
)

// writeRecord upserts the record at key, then adds key to every index set.
// Indexes are only touched once the record write succeeded. The index
// updates are pipelined but not transactional.
func writeRecord(ctx context.Context, client redis.Cmdable, key string, fields model.Fields, indexes ...string) error {
	if err := client.HSet(ctx, key, map[string]interface{}(fields)).Err(); err != nil {
		return err
	}
	if len(indexes) == 0 {
		return nil
	}

	_, err := client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, index := range indexes {
			pipe.SAdd(ctx, index, key)
		}
		return nil
	})
	return err
}

// fetchRecord returns the decoded record at key, or nil when it does not exist.
func fetchRecord(ctx context.Context, client redis.Cmdable, key string) (model.Record, error) {
	n, err := client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	fields, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return model.Record(fields), nil
}

// fetchIndex returns the records whose keys are members of the index set.
// Members without a record are skipped. Order is unspecified.
func fetchIndex(ctx context.Context, client redis.Cmdable, index string) ([]model.Record, error) {
	keys, err := client.SMembers(ctx, index).Result()
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(keys))
	for _, key := range keys {
		fields, err := client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}
		records = append(records, model.Record(fields))
	}
	return records, nil
}
