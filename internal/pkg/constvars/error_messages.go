package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request right now"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientResourceNotFound              = "The requested resource was not found"
	ErrClientServerLongRespond             = "The server took too long to respond"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevCannotParseJSON            = "Cannot parse JSON payload"
	ErrDevCannotMarshalJSON          = "Cannot marshal value to JSON"
	ErrDevURLParamIDValidationFailed = "URL parameter %s is not a valid identifier"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"
	ErrDevAPIKeyMissingOrInvalid     = "API key missing or invalid"

	ErrDevDBFailedToFindDocument     = "Failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "Failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "Failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "Failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "Failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "Failed to count documents in database"

	ErrDevRedisGetData       = "Failed to get data from redis"
	ErrDevRedisSetData       = "Failed to set data into redis"
	ErrDevRedisDeleteData    = "Failed to delete data from redis"
	ErrDevRedisGetNoData     = "No data found in redis for key %s"
	ErrDevRedisUnlock        = "Failed to release redis lock"

	ErrDevRabbitMQPublish    = "Failed to publish message to RabbitMQ"
	ErrDevMinioCreateObject  = "Failed to create object in bucket %s"
	ErrDevMinioPresignObject = "Failed to presign object in bucket %s"

	ErrDevResourceNotFound      = "Resource %s not found"
	ErrDevScheduleNotFound      = "Contact schedule not found"
	ErrDevMessageTemplateNotFound = "No message template for channel/step"
	ErrDevNotifierNotConfigured = "No notifier configured for channel %s"
	ErrDevContractNotNotifiable = "Contract does not allow notifications"
	ErrDevReportBuildFailed     = "Failed to build report workbook"
)
