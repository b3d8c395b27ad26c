package models

type Patient struct {
	ID        string `bson:"_id,omitempty"`
	ClinicID  string `bson:"clinicId"`
	Name      string `bson:"name"`
	Email     string `bson:"email,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	Address   string `bson:"address,omitempty"`
	TimeModel `bson:",inline"`
}
