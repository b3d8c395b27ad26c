package requests

import "time"

type CreateClinic struct {
	Name           string `json:"name" validate:"required"`
	City           string `json:"city"`
	MinDaysOverdue int    `json:"min_days_overdue" validate:"gte=0"`
}

type CreatePatient struct {
	ClinicID string `json:"clinic_id" validate:"required,uuid"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type CreateContract struct {
	PatientID       string `json:"patient_id" validate:"required,uuid"`
	ClinicID        string `json:"clinic_id" validate:"required,uuid"`
	OralsinID       string `json:"oralsin_id"`
	DoNotifications bool   `json:"do_notifications"`
}

type CreateInstallment struct {
	ContractID string    `json:"contract_id" validate:"required,uuid"`
	Number     int       `json:"number" validate:"gt=0"`
	Amount     float64   `json:"amount" validate:"gt=0"`
	DueDate    time.Time `json:"due_date" validate:"required"`
	IsCurrent  bool      `json:"is_current"`
}

type CreateMessageTemplate struct {
	Type      string `json:"type" validate:"required,channel"`
	Content   string `json:"content" validate:"required"`
	Step      int    `json:"step" validate:"gte=0"`
	ClinicID  string `json:"clinic_id" validate:"omitempty,uuid"`
	IsDefault bool   `json:"is_default"`
}

type RunNotifications struct {
	ClinicID  string `json:"clinic_id" validate:"required,uuid"`
	BatchSize int    `json:"batch_size" validate:"omitempty,gt=0"`
}

type SendManualNotification struct {
	PatientID  string `json:"patient_id" validate:"required,uuid"`
	ContractID string `json:"contract_id" validate:"required,uuid"`
	Channel    string `json:"channel" validate:"required,channel"`
	MessageID  string `json:"message_id" validate:"omitempty,uuid"`
}

type ResolvePendingCall struct {
	Success     bool   `json:"success"`
	ResultNotes string `json:"result_notes"`
}
