package constvars

// Mongo collection names.
const (
	MongoCollectionClinics         = "clinics"
	MongoCollectionPatients        = "patients"
	MongoCollectionContracts       = "contracts"
	MongoCollectionInstallments    = "installments"
	MongoCollectionSchedules       = "contact_schedules"
	MongoCollectionHistories       = "contact_histories"
	MongoCollectionFlowStepConfigs = "flow_step_configs"
	MongoCollectionMessages        = "messages"
	MongoCollectionPendingCalls    = "pending_calls"
	MongoCollectionCollectionCases = "collection_cases"
)

// Notification channels.
const (
	ChannelLetter    = "letter"
	ChannelPhoneCall = "phonecall"
	ChannelSMS       = "sms"
	ChannelWhatsApp  = "whatsapp"
	ChannelEmail     = "email"
)

// ContactSchedule statuses.
const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusSent      = "sent"
	ScheduleStatusFailed    = "failed"
	ScheduleStatusCancelled = "cancelled"
)

// Notification triggers.
const (
	TriggerAutomated = "automated"
	TriggerManual    = "manual"
)

// PendingCall statuses.
const (
	PendingCallStatusOpen    = "open"
	PendingCallStatusDone    = "done"
	PendingCallStatusSkipped = "skipped"
)

// CollectionCase statuses.
const (
	CollectionCaseStatusOpen   = "open"
	CollectionCaseStatusClosed = "closed"
)

// RabbitMQ topology for cross-service events.
const (
	ExchangeActivities       = "oralsin.activities"
	RoutingKeyContactHistory = "call"
)

// Redis key prefixes.
const (
	RedisKeyDispatchLockFormat = "debtflow:dispatch-lock:%s"
	RedisKeyFlowConfigCache    = "debtflow:flow-step-configs"
)

// Default cooldown used when computing the proportional re-entry step.
const DefaultCooldownDays = 7
