package models

import "time"

// CollectionCase tracks a contract handed off to cordial billing and its
// Pipedrive deal, created when an installment crosses the clinic's
// min-days-overdue threshold.
type CollectionCase struct {
	ID            string    `bson:"_id,omitempty"`
	PatientID     string    `bson:"patientId"`
	ContractID    string    `bson:"contractId"`
	ClinicID      string    `bson:"clinicId"`
	InstallmentID string    `bson:"installmentId,omitempty"`
	Amount        float64   `bson:"amount"`
	OpenedAt      time.Time `bson:"openedAt"`
	DealID        string    `bson:"dealId,omitempty"`
	Status        string    `bson:"status"`
	TimeModel     `bson:",inline"`
}
