package configs

import (
	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

func ConnectRedis() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr: Getenv("REDIS_ADDR", "localhost:6379"),
	})
}

func GetRedisClient() *redis.Client {
	return RedisClient
}
