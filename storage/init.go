package storage

import (
	"VoyaGo/storage/redis"
)

// 统一 init storage 层
// 这个服务没有持久化需求，storage 只剩下限流用的 Redis

func Init() error {
	if err := redis.Init(); err != nil {
		return err
	}

	return nil
}
