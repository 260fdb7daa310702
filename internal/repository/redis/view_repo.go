package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	viewCntPrefix = "view:cnt:content"
	ViewCntTTL    = 24 * time.Hour
)

// ViewRepository 内容详情页的浏览计数。计数只存 redis，带 TTL，
// 过期归零可以接受（仅做展示参考，不回写 MySQL）
type ViewRepository struct{}

func viewKey(contentID uint64) string {
	return fmt.Sprintf("%s:%d", viewCntPrefix, contentID)
}

// Incr 自增并顺延 TTL，返回自增后的值
func (r *ViewRepository) Incr(ctx context.Context, contentID uint64) (int64, error) {
	k := viewKey(contentID)
	n, err := Client.Incr(ctx, k).Result()
	if err != nil {
		return 0, err
	}
	_ = Client.Expire(ctx, k, ViewCntTTL).Err()
	return n, nil
}
