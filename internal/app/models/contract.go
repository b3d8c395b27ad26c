package models

type Contract struct {
	ID              string `bson:"_id,omitempty"`
	PatientID       string `bson:"patientId"`
	ClinicID        string `bson:"clinicId"`
	OralsinID       string `bson:"oralsinId,omitempty"`
	DoNotifications bool   `bson:"doNotifications"`
	DoBillings      bool   `bson:"doBillings"`
	TimeModel       `bson:",inline"`
}
