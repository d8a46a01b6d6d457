// Package redis connects to Redis with retries and exposes a health check.
//
// Redis is optional for urlkit: when REDIS_URL is set, rate-limit buckets are
// shared through it so several API replicas enforce one limit.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	check := redis.Healthcheck(client)
package redis
