package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"rockgrip/config"
	"rockgrip/models"
	"rockgrip/services/lead"
	"rockgrip/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitLeadNotifyWorker runs the async worker in background. It consumes
// the lead:notify tasks the submission pipeline enqueues after each
// successful write.
func InitLeadNotifyWorker(salesSvc notification.SalesAlertService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(lead.TypeLeadNotify, handleLeadNotifyTask(salesSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[LeadNotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[LeadNotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[LeadNotifyWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleLeadNotifyTask(salesSvc notification.SalesAlertService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.LeadNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[LeadNotifyHandler] invalid payload: %v", err)
			return err
		}

		if err := salesSvc.NotifyNewLead(ctx, p); err != nil {
			log.Printf("[LeadNotifyHandler] failed to notify sales: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[LeadNotifyWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
