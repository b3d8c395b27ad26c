package main

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/drivers/database"
	"debtflow-service/internal/app/drivers/logger"
	"debtflow-service/internal/app/drivers/mailer"
	"debtflow-service/internal/app/drivers/messaging"
	"debtflow-service/internal/app/drivers/storage"
	"debtflow-service/internal/app/services/core/billing"
	"debtflow-service/internal/app/services/core/clinics"
	"debtflow-service/internal/app/services/core/collectioncases"
	"debtflow-service/internal/app/services/core/flowsteps"
	"debtflow-service/internal/app/services/core/histories"
	"debtflow-service/internal/app/services/core/messages"
	"debtflow-service/internal/app/services/core/patients"
	"debtflow-service/internal/app/services/core/pendingcalls"
	"debtflow-service/internal/app/services/core/schedules"
	"debtflow-service/internal/app/services/crm/oralsin"
	"debtflow-service/internal/app/services/crm/pipedrive"
	"debtflow-service/internal/app/services/notification"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/app/services/shared/locker"
	sharedmailer "debtflow-service/internal/app/services/shared/mailer"
	"debtflow-service/internal/app/services/shared/notifiers"
	"debtflow-service/internal/app/services/shared/redis"
	sharedstorage "debtflow-service/internal/app/services/shared/storage"
	"debtflow-service/internal/pkg/constvars"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// worker wakes up on a fixed cadence and dispatches the due contact
// schedules of every active clinic. A redis lock per clinic keeps
// concurrent worker replicas from double-sending the same batch.
type worker struct {
	clinicRepository contracts.ClinicRepository
	dispatcher       contracts.NotificationDispatcher
	locker           contracts.LockerService
	internalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	dispatchWorker := bootstrapingTheWorker(config.Bootstrap{
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logrus.Println("Waiting for the running dispatch pass to finish..")
		cancel()
	}()

	dispatchWorker.run(ctx)

	if err := rabbitMQ.Close(); err != nil {
		logrus.Printf("Error closing RabbitMQ connection: %v", err)
	}

	logrus.Println("Worker exiting")
}

func (w *worker) run(ctx context.Context) {
	interval := time.Duration(w.internalConfig.Notification.WorkerIntervalInMinute) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.Log.Info("worker.run started", zap.Duration("interval", interval))

	w.dispatchAllClinics(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.dispatchAllClinics(ctx)
		}
	}
}

func (w *worker) dispatchAllClinics(ctx context.Context) {
	activeClinics, err := w.clinicRepository.FindActive(ctx)
	if err != nil {
		w.Log.Error("worker.dispatchAllClinics error", zap.Error(err))
		return
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)
	for i := range activeClinics {
		clinic := activeClinics[i]
		group.Go(func() error {
			w.dispatchClinic(groupCtx, clinic.ID)
			return nil
		})
	}
	_ = group.Wait()
}

func (w *worker) dispatchClinic(ctx context.Context, clinicID string) {
	lockKey := fmt.Sprintf(constvars.RedisKeyDispatchLockFormat, clinicID)
	lockTTL := time.Duration(w.internalConfig.Notification.LockTTLInMinute) * time.Minute

	acquired, lockValue, err := w.locker.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		w.Log.Error("worker.dispatchClinic lock error",
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.Log.Debug("worker.dispatchClinic skipped, another replica holds the lock",
			zap.String(constvars.LoggingClinicIDKey, clinicID),
		)
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.Background(), lockKey, lockValue); err != nil {
			w.Log.Warn("worker.dispatchClinic unlock error",
				zap.String(constvars.LoggingClinicIDKey, clinicID),
				zap.Error(err),
			)
		}
	}()

	report, err := w.dispatcher.RunDue(ctx, clinicID, time.Now(), w.internalConfig.Notification.BatchSize)
	if err != nil {
		w.Log.Error("worker.dispatchClinic dispatch error",
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.Error(err),
		)
		return
	}

	w.Log.Info("worker.dispatchClinic finished",
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.Int("processed", report.Processed),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Int("retried", report.Retried),
	)
}

func bootstrapingTheWorker(bootstrap config.Bootstrap) *worker {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	eventDispatcher := events.NewEventDispatcher(bootstrap.Logger)
	smtpClient := mailer.NewSMTPClient(bootstrap.InternalConfig)
	mailerService := sharedmailer.NewMailerService(smtpClient)
	letterStorage := sharedstorage.NewLetterStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// Repositories
	clinicMongoRepository := clinics.NewClinicMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	contractMongoRepository := billing.NewContractMongoRepository(bootstrap.MongoDB, dbName)
	installmentMongoRepository := billing.NewInstallmentMongoRepository(bootstrap.MongoDB, dbName)
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(bootstrap.MongoDB, dbName)
	historyMongoRepository := histories.NewHistoryMongoRepository(bootstrap.MongoDB, dbName)
	flowStepRepository := flowsteps.NewCachedFlowStepRepository(
		flowsteps.NewFlowStepMongoRepository(bootstrap.MongoDB, dbName),
		redisRepository,
		bootstrap.Logger,
	)
	messageMongoRepository := messages.NewMessageMongoRepository(bootstrap.MongoDB, dbName)
	pendingCallMongoRepository := pendingcalls.NewPendingCallMongoRepository(bootstrap.MongoDB, dbName)
	collectionCaseMongoRepository := collectioncases.NewCollectionCaseMongoRepository(bootstrap.MongoDB, dbName)

	// Notifiers
	sendRate := bootstrap.InternalConfig.Notification.SendRatePerSecond
	notifierRegistry := notifiers.NewRegistry(map[string]contracts.Notifier{
		constvars.ChannelWhatsApp: notifiers.Throttle(notifiers.NewWhatsAppNotifier(bootstrap.InternalConfig, bootstrap.Logger), sendRate),
		constvars.ChannelSMS:      notifiers.Throttle(notifiers.NewSMSNotifier(bootstrap.InternalConfig, bootstrap.Logger), sendRate),
		constvars.ChannelEmail:    notifiers.Throttle(notifiers.NewEmailNotifier(mailerService, bootstrap.Logger), sendRate),
		constvars.ChannelLetter:   notifiers.Throttle(notifiers.NewLetterNotifier(letterStorage, mailerService, bootstrap.InternalConfig, bootstrap.Logger), sendRate),
	})

	// Notification flow
	schedulingService := notification.NewSchedulingService(
		scheduleMongoRepository,
		installmentMongoRepository,
		contractMongoRepository,
		clinicMongoRepository,
		flowStepRepository,
		collectionCaseMongoRepository,
		eventDispatcher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	dispatcherService := notification.NewDispatcherService(
		scheduleMongoRepository,
		installmentMongoRepository,
		contractMongoRepository,
		flowStepRepository,
		historyMongoRepository,
		pendingCallMongoRepository,
		messageMongoRepository,
		patientMongoRepository,
		notifierRegistry,
		schedulingService,
		eventDispatcher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// CRM sync
	pipedriveClient := pipedrive.NewPipedriveClient(bootstrap.InternalConfig, bootstrap.Logger)
	collectionSyncService := pipedrive.NewCollectionSyncService(
		pipedriveClient,
		collectionCaseMongoRepository,
		patientMongoRepository,
		bootstrap.Logger,
	)
	collectionSyncService.Register(eventDispatcher)

	oralsinClient := oralsin.NewOralsinClient(bootstrap.InternalConfig, bootstrap.Logger)
	activityPublisher, err := oralsin.NewActivityPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to set up activity publisher: %v", err)
	}
	activitySyncService := oralsin.NewActivitySyncService(
		oralsinClient,
		activityPublisher,
		historyMongoRepository,
		bootstrap.Logger,
	)
	activitySyncService.Register(eventDispatcher)

	return &worker{
		clinicRepository: clinicMongoRepository,
		dispatcher:       dispatcherService,
		locker:           lockService,
		internalConfig:   bootstrap.InternalConfig,
		Log:              bootstrap.Logger,
	}
}
