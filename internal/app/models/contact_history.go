package models

import "time"

// ContactHistory is append-only: rows are never mutated after insert.
type ContactHistory struct {
	ID                  string    `bson:"_id,omitempty"`
	ScheduleID          string    `bson:"scheduleId,omitempty"`
	PatientID           string    `bson:"patientId"`
	ContractID          string    `bson:"contractId,omitempty"`
	ClinicID            string    `bson:"clinicId"`
	ContactType         string    `bson:"contactType"`
	Step                int       `bson:"step"`
	SentAt              time.Time `bson:"sentAt"`
	Success             bool      `bson:"success"`
	NotificationTrigger string    `bson:"notificationTrigger"`
	FeedbackStatus      string    `bson:"feedbackStatus,omitempty"`
	Observation         string    `bson:"observation,omitempty"`
	MessageID           string    `bson:"messageId,omitempty"`
	TimeModel           `bson:",inline"`
}
