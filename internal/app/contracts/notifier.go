package contracts

import "context"

// ContactInfo carries the destination data a channel notifier needs.
type ContactInfo struct {
	PatientID   string
	PatientName string
	Email       string
	Phone       string
	Address     string
	ClinicID    string
	ContractID  string
}

// Notifier sends one rendered message over a single channel.
type Notifier interface {
	Send(ctx context.Context, contact ContactInfo, message string) error
}

// NotifierRegistry resolves the notifier configured for a channel.
type NotifierRegistry interface {
	Get(channel string) (Notifier, error)
}
