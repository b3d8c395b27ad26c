package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingClinicIDKey           = "clinic_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingContractIDKey         = "contract_id"
	LoggingScheduleIDKey         = "schedule_id"
	LoggingHistoryIDKey          = "history_id"
	LoggingStepKey               = "step"
	LoggingChannelKey            = "channel"
	LoggingEventKey              = "event"
	LoggingHandlerKey            = "handler"
	LoggingListenersKey          = "listeners"
	LoggingExchangeKey           = "exchange"
	LoggingRoutingKeyKey         = "routing_key"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingProcessedKey          = "processed"
	LoggingObjectNameKey         = "object_name"
	LoggingDealIDKey             = "deal_id"
)
