package main

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/delivery/http/middlewares"
	"debtflow-service/internal/app/delivery/http/routers"
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
	"debtflow-service/internal/app/services/core/reports"
	"debtflow-service/internal/app/services/core/schedules"
	"debtflow-service/internal/app/services/crm/oralsin"
	"debtflow-service/internal/app/services/crm/pipedrive"
	"debtflow-service/internal/app/services/notification"
	"debtflow-service/internal/app/services/shared/events"
	sharedmailer "debtflow-service/internal/app/services/shared/mailer"
	"debtflow-service/internal/app/services/shared/notifiers"
	"debtflow-service/internal/app/services/shared/redis"
	sharedstorage "debtflow-service/internal/app/services/shared/storage"
	"debtflow-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

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
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := rabbitMQ.Close(); err != nil {
		logrus.Printf("Error closing RabbitMQ connection: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
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

	// Usecases
	clinicUsecase := clinics.NewClinicUsecase(clinicMongoRepository, bootstrap.InternalConfig)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, clinicMongoRepository, bootstrap.InternalConfig)
	contractUsecase := billing.NewContractUsecase(contractMongoRepository, patientMongoRepository)
	installmentUsecase := billing.NewInstallmentUsecase(
		installmentMongoRepository,
		contractMongoRepository,
		scheduleMongoRepository,
		schedulingService,
		bootstrap.Logger,
	)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleMongoRepository, bootstrap.InternalConfig)
	historyUsecase := histories.NewHistoryUsecase(historyMongoRepository, bootstrap.InternalConfig)
	flowStepUsecase := flowsteps.NewFlowStepUsecase(flowStepRepository)
	messageUsecase := messages.NewMessageUsecase(messageMongoRepository, bootstrap.InternalConfig)
	pendingCallUsecase := pendingcalls.NewPendingCallUsecase(
		pendingCallMongoRepository,
		historyMongoRepository,
		schedulingService,
		eventDispatcher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reportUsecase := reports.NewReportUsecase(historyMongoRepository, patientMongoRepository)

	// Controllers
	controllers := &routers.Controllers{
		Clinic:       clinics.NewClinicController(bootstrap.Logger, clinicUsecase),
		Patient:      patients.NewPatientController(bootstrap.Logger, patientUsecase),
		Billing:      billing.NewBillingController(bootstrap.Logger, contractUsecase, installmentUsecase),
		Schedule:     schedules.NewScheduleController(bootstrap.Logger, scheduleUsecase),
		History:      histories.NewHistoryController(bootstrap.Logger, historyUsecase),
		FlowStep:     flowsteps.NewFlowStepController(bootstrap.Logger, flowStepUsecase),
		Message:      messages.NewMessageController(bootstrap.Logger, messageUsecase),
		PendingCall:  pendingcalls.NewPendingCallController(bootstrap.Logger, pendingCallUsecase),
		Report:       reports.NewReportController(bootstrap.Logger, reportUsecase),
		Notification: notification.NewNotificationController(bootstrap.Logger, dispatcherService, bootstrap.InternalConfig),
	}

	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, httpMiddlewares, controllers)
}
