package responses

import "time"

type Clinic struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	City           string `json:"city,omitempty"`
	Active         bool   `json:"active"`
	MinDaysOverdue int    `json:"min_days_overdue"`
}

type Patient struct {
	ID       string `json:"id"`
	ClinicID string `json:"clinic_id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type Contract struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	ClinicID        string `json:"clinic_id"`
	OralsinID       string `json:"oralsin_id,omitempty"`
	DoNotifications bool   `json:"do_notifications"`
	DoBillings      bool   `json:"do_billings"`
}

type Installment struct {
	ID         string    `json:"id"`
	ContractID string    `json:"contract_id"`
	Number     int       `json:"number"`
	Amount     float64   `json:"amount"`
	DueDate    time.Time `json:"due_date"`
	Received   bool      `json:"received"`
	IsCurrent  bool      `json:"is_current"`
}

type ContactSchedule struct {
	ID                  string    `json:"id"`
	PatientID           string    `json:"patient_id"`
	ContractID          string    `json:"contract_id,omitempty"`
	ClinicID            string    `json:"clinic_id"`
	InstallmentID       string    `json:"installment_id,omitempty"`
	CurrentStep         int       `json:"current_step"`
	Channel             string    `json:"channel"`
	Status              string    `json:"status"`
	ScheduledDate       time.Time `json:"scheduled_date"`
	NotificationTrigger string    `json:"notification_trigger"`
}

type ContactHistory struct {
	ID             string    `json:"id"`
	ScheduleID     string    `json:"schedule_id,omitempty"`
	PatientID      string    `json:"patient_id"`
	ContractID     string    `json:"contract_id,omitempty"`
	ClinicID       string    `json:"clinic_id"`
	ContactType    string    `json:"contact_type"`
	SentAt         time.Time `json:"sent_at"`
	Success        bool      `json:"success"`
	FeedbackStatus string    `json:"feedback_status,omitempty"`
	Observation    string    `json:"observation,omitempty"`
}

type FlowStep struct {
	StepNumber   int      `json:"step_number"`
	Channels     []string `json:"channels"`
	CooldownDays int      `json:"cooldown_days"`
	Active       bool     `json:"active"`
	Description  string   `json:"description,omitempty"`
}

type MessageTemplate struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Step      int    `json:"step"`
	ClinicID  string `json:"clinic_id,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type PendingCall struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patient_id"`
	ContractID    string     `json:"contract_id"`
	ClinicID      string     `json:"clinic_id"`
	ScheduleID    string     `json:"schedule_id,omitempty"`
	CurrentStep   int        `json:"current_step"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	Attempts      int        `json:"attempts"`
	Status        string     `json:"status"`
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	ResultNotes   string     `json:"result_notes,omitempty"`
}

type DispatchResult struct {
	ScheduleID  string `json:"schedule_id"`
	PatientID   string `json:"patient_id"`
	ContractID  string `json:"contract_id,omitempty"`
	Step        int    `json:"step"`
	Channel     string `json:"channel"`
	Success     bool   `json:"success"`
	PendingCall bool   `json:"pending_call,omitempty"`
	Skipped     bool   `json:"skipped,omitempty"`
	Retriable   bool   `json:"retriable,omitempty"`
	Error       string `json:"error,omitempty"`
}

type DispatchReport struct {
	ClinicID  string           `json:"clinic_id"`
	Processed int              `json:"processed"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Retried   int              `json:"retried"`
	Results   []DispatchResult `json:"results"`
}
