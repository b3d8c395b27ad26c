package utils

import (
	"debtflow-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("channel", validateChannel)
	validate.RegisterValidation("schedule_status", validateScheduleStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateChannel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ChannelLetter, constvars.ChannelPhoneCall, constvars.ChannelSMS,
		constvars.ChannelWhatsApp, constvars.ChannelEmail:
		return true
	}
	return false
}

func validateScheduleStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.ScheduleStatusPending, constvars.ScheduleStatusSent,
		constvars.ScheduleStatusFailed, constvars.ScheduleStatusCancelled:
		return true
	}
	return false
}
