package models

type Clinic struct {
	ID             string `bson:"_id,omitempty"`
	Name           string `bson:"name"`
	City           string `bson:"city,omitempty"`
	Active         bool   `bson:"active"`
	MinDaysOverdue int    `bson:"minDaysOverdue"`
	TimeModel      `bson:",inline"`
}
