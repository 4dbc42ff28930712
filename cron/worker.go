package cron

import (
	"context"
	"log"
	"time"

	"kycdesk/config"
	documentSvc "kycdesk/services/document"
	notificationSvc "kycdesk/services/notification"

	"github.com/hibiken/asynq"
)

const TypeExpiryScan = "expiry:scan"

// InitExpiryWorker runs the async worker and a daily schedule that scans
// every agency's documents for the 30-day expiry horizon and pushes the
// alert badge to staff.
func InitExpiryWorker(docSvc documentSvc.DocumentService, agencyLister AgencyLister, notifSvc notificationSvc.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCronDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeExpiryScan, handleExpiryScan(docSvc, agencyLister, notifSvc))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("@every 24h", asynq.NewTask(TypeExpiryScan, nil)); err != nil {
		log.Printf("[ExpiryWorker] failed to register daily scan: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ExpiryWorker] scheduler stopped: %v", err)
		}
	}()
}

// AgencyLister yields the agency IDs the scan iterates over.
type AgencyLister interface {
	GetAgencyIDs() ([]string, error)
}

func handleExpiryScan(docSvc documentSvc.DocumentService, agencyLister AgencyLister, notifSvc notificationSvc.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		agencies, err := agencyLister.GetAgencyIDs()
		if err != nil {
			log.Printf("[ExpiryScan] failed to list agencies: %v", err)
			return err
		}

		for _, agencyID := range agencies {
			alerts, hasData, err := docSvc.ExpiringSoon(agencyID)
			if err != nil {
				log.Printf("[ExpiryScan] scan failed for agency %s: %v", agencyID, err)
				continue
			}
			if !hasData || len(alerts) == 0 {
				continue
			}
			if err := notifSvc.SendExpiryAlert(ctx, agencyID, alerts); err != nil {
				log.Printf("[ExpiryScan] failed to notify agency %s: %v", agencyID, err)
			}
		}
		return nil
	}
}
