package models

import "time"

type PendingCall struct {
	ID            string     `bson:"_id,omitempty"`
	PatientID     string     `bson:"patientId"`
	ContractID    string     `bson:"contractId"`
	ClinicID      string     `bson:"clinicId"`
	ScheduleID    string     `bson:"scheduleId,omitempty"`
	CurrentStep   int        `bson:"currentStep"`
	ScheduledAt   time.Time  `bson:"scheduledAt"`
	Attempts      int        `bson:"attempts"`
	Status        string     `bson:"status"`
	LastAttemptAt *time.Time `bson:"lastAttemptAt,omitempty"`
	ResultNotes   string     `bson:"resultNotes,omitempty"`
	TimeModel     `bson:",inline"`
}
