package models

type Message struct {
	ID        string `bson:"_id,omitempty"`
	Type      string `bson:"type"`
	Content   string `bson:"content"`
	Step      int    `bson:"step"`
	ClinicID  string `bson:"clinicId,omitempty"`
	IsDefault bool   `bson:"isDefault"`
	TimeModel `bson:",inline"`
}
