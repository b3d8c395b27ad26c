package config

import (
	"debtflow-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "debtflow"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "debtflow-letters"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			BaseUrl:                    utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			APIKey:                     utils.GetEnvString("APP_API_KEY", ""),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Notification: Notification{
			BatchSize:              utils.GetEnvInt("NOTIFICATION_BATCH_SIZE", 10),
			WorkerIntervalInMinute: utils.GetEnvInt("NOTIFICATION_WORKER_INTERVAL_IN_MINUTE", 15),
			LockTTLInMinute:        utils.GetEnvInt("NOTIFICATION_LOCK_TTL_IN_MINUTE", 10),
			SendTimeoutInSecond:    utils.GetEnvInt("NOTIFICATION_SEND_TIMEOUT_IN_SECOND", 10),
			SendRatePerSecond:      utils.GetEnvFloat("NOTIFICATION_SEND_RATE_PER_SECOND", 5),
			DefaultMinDaysOverdue:  utils.GetEnvInt("NOTIFICATION_DEFAULT_MIN_DAYS_OVERDUE", 90),
			LetterRecipientEmail:   utils.GetEnvString("NOTIFICATION_LETTER_RECIPIENT_EMAIL", ""),
			LetterLinkExpiryInHour: utils.GetEnvInt("NOTIFICATION_LETTER_LINK_EXPIRY_IN_HOUR", 72),
		},
		WhatsApp: WhatsApp{
			Endpoint: utils.GetEnvString("WHATSAPP_ENDPOINT", ""),
			APIKey:   utils.GetEnvString("WHATSAPP_API_KEY", ""),
		},
		SMS: SMS{
			BaseUrl:   utils.GetEnvString("SMS_BASE_URL", ""),
			AuthToken: utils.GetEnvString("SMS_AUTH_TOKEN", ""),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		Pipedrive: Pipedrive{
			BaseUrl:  utils.GetEnvString("PIPEDRIVE_API_BASE", "https://api.pipedrive.com/v1/"),
			APIToken: utils.GetEnvString("PIPEDRIVE_API_TOKEN", ""),
		},
		Oralsin: Oralsin{
			BaseUrl:  utils.GetEnvString("ORALSIN_API_BASE", ""),
			APIToken: utils.GetEnvString("ORALSIN_API_TOKEN", ""),
		},
	}
}
