package cache

import (
	"context"
	"fmt"
)

const (
	homeFeedVersionKey = "feed:home:version"
	homeFeedPagePrefix = "feed:home:v%d:limit:%d:offset:%d"
	homeFeedCountKey   = "feed:home:v%d:count"
)

// homeFeedVersion returns the current version counter for home-feed keys.
// Bumping the counter orphans all previously written pages, which then
// simply expire on their TTL.
func homeFeedVersion(ctx context.Context) int64 {
	if client == nil {
		return 0
	}
	v, err := client.Get(ctx, homeFeedVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// HomeFeedPageKey returns the cache key for one page of the home feed.
func HomeFeedPageKey(ctx context.Context, limit, offset int) string {
	return fmt.Sprintf(homeFeedPagePrefix, homeFeedVersion(ctx), limit, offset)
}

// HomeFeedCountKey returns the cache key for the home feed total count.
func HomeFeedCountKey(ctx context.Context) string {
	return fmt.Sprintf(homeFeedCountKey, homeFeedVersion(ctx))
}

// InvalidateHomeFeed bumps the home-feed version so every cached page and
// count is orphaned at once. Called after any post create/update/delete.
func InvalidateHomeFeed(ctx context.Context) {
	if client != nil {
		client.Incr(ctx, homeFeedVersionKey)
	}
}
