package redisstore

import (
	"context"
	"fmt"

	"loan-origination-backend/internal/domain/sequence"

	"github.com/redis/go-redis/v9"
)

// SequenceRepository keeps one counter per name under "seq:<name>".
type SequenceRepository struct {
	rdb    *redis.Client
	prefix string
}

func NewSequenceRepository(rdb *redis.Client) *SequenceRepository {
	return &SequenceRepository{rdb: rdb, prefix: "seq:"}
}

// Next seeds the counter at sequence.StartAt when missing and increments it
// in the same MULTI block, so concurrent callers never share a value.
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	key := r.prefix + name
	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.SetNX(ctx, key, sequence.StartAt, 0)
		incr = p.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sequence %s: %w", name, err)
	}
	return incr.Val(), nil
}
