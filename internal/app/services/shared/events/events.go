package events

import "time"

// Event names used as dispatch keys.
const (
	NotificationScheduledName = "notification.scheduled"
	ContactRecordedName       = "contact.recorded"
	FlowExhaustedName         = "flow.exhausted"
)

// NotificationScheduled is emitted whenever a new contact schedule is
// created or re-targeted.
type NotificationScheduled struct {
	ScheduleID    string
	PatientID     string
	ContractID    string
	ClinicID      string
	Step          int
	Channel       string
	ScheduledDate time.Time
}

func (NotificationScheduled) EventName() string { return NotificationScheduledName }

// ContactRecorded is emitted for every contact attempt that reached a final
// outcome: a successful send or a permanent failure. Temporary failures are
// retried silently and never recorded.
type ContactRecorded struct {
	HistoryID  string
	ScheduleID string
	PatientID  string
	ContractID string
	ClinicID   string
	Channel    string
	Step       int
	Success    bool
	Trigger    string
	SentAt     time.Time
}

func (ContactRecorded) EventName() string { return ContactRecordedName }

// FlowExhausted is emitted when a lineage ends because no further step is
// configured or the contract moved to cordial billing.
type FlowExhausted struct {
	ScheduleID string
	PatientID  string
	ContractID string
	ClinicID   string
	LastStep   int
}

func (FlowExhausted) EventName() string { return FlowExhaustedName }
