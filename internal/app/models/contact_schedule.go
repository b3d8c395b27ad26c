package models

import "time"

type ContactSchedule struct {
	ID                  string    `bson:"_id,omitempty"`
	PatientID           string    `bson:"patientId"`
	ContractID          string    `bson:"contractId,omitempty"`
	ClinicID            string    `bson:"clinicId"`
	InstallmentID       string    `bson:"installmentId,omitempty"`
	CurrentStep         int       `bson:"currentStep"`
	Channel             string    `bson:"channel"`
	Status              string    `bson:"status"`
	ScheduledDate       time.Time `bson:"scheduledDate"`
	NotificationTrigger string    `bson:"notificationTrigger"`
	TimeModel           `bson:",inline"`
}

func (s *ContactSchedule) IsDue(now time.Time) bool {
	return !s.ScheduledDate.After(now)
}
