package models

import "time"

// FlowStepConfig is read-only reference data defining the notification flow.
type FlowStepConfig struct {
	ID           string   `bson:"_id,omitempty"`
	StepNumber   int      `bson:"stepNumber"`
	Channels     []string `bson:"channels"`
	CooldownDays int      `bson:"cooldownDays"`
	Active       bool     `bson:"active"`
	Description  string   `bson:"description,omitempty"`
	TimeModel    `bson:",inline"`
}

// PrimaryChannel picks the first channel in declared priority order.
func (c *FlowStepConfig) PrimaryChannel() string {
	if len(c.Channels) == 0 {
		return ""
	}
	return c.Channels[0]
}

func (c *FlowStepConfig) NextRunDate(from time.Time) time.Time {
	return from.AddDate(0, 0, c.CooldownDays)
}
