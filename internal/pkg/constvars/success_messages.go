package constvars

const (
	GetClinicSuccessMessage        = "Successfully retrieved clinic data"
	GetPatientSuccessMessage       = "Successfully retrieved patient data"
	GetContractSuccessMessage      = "Successfully retrieved contract data"
	GetInstallmentSuccessMessage   = "Successfully retrieved installment data"
	GetScheduleSuccessMessage      = "Successfully retrieved contact schedules"
	GetHistorySuccessMessage       = "Successfully retrieved contact history"
	GetFlowStepSuccessMessage      = "Successfully retrieved flow step configuration"
	GetMessageSuccessMessage       = "Successfully retrieved message templates"
	GetPendingCallSuccessMessage   = "Successfully retrieved pending calls"
	CreateResourceSuccessMessage   = "Successfully created resource"
	UpdateResourceSuccessMessage   = "Successfully updated resource"
	DeleteResourceSuccessMessage   = "Successfully deleted resource"
	RunNotificationsSuccessMessage = "Notification run completed"
	SendManualSuccessMessage       = "Manual notification dispatched"
	ResolvePendingCallSuccessMessage = "Pending call resolved"
)
