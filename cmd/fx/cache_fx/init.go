package cache_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"wander/internal/infra"
	"wander/pkg/cache"
)

var Module = fx.Provide(provideRedis, provideSearchCache)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func provideSearchCache(rdb *redis.Client) cache.SearchCache {
	return cache.NewSearchCache(rdb)
}
