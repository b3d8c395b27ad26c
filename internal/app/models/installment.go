package models

import "time"

type Installment struct {
	ID         string    `bson:"_id,omitempty"`
	ContractID string    `bson:"contractId"`
	Number     int       `bson:"number"`
	Amount     float64   `bson:"amount"`
	DueDate    time.Time `bson:"dueDate"`
	Received   bool      `bson:"received"`
	IsCurrent  bool      `bson:"isCurrent"`
	TimeModel  `bson:",inline"`
}
