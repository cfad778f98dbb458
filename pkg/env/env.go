package env

import "os"

var (
	RedisPassWord = os.Getenv("BLOKUS_REDIS_PASSWORD")
	MongoPassWord = os.Getenv("BLOKUS_MONGO_PASSWORD")
)
