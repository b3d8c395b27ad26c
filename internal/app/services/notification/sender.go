package notification

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/app/services/shared/notifiers"
	"debtflow-service/internal/pkg/exceptions"
	"debtflow-service/internal/pkg/utils"
	"errors"
	"fmt"
	"time"
)

// senderService resolves the message template for a contact, renders it with
// the patient/installment context and pushes it through the channel notifier.
type senderService struct {
	messageRepo contracts.MessageRepository
	patientRepo contracts.PatientRepository
	registry    contracts.NotifierRegistry
	sendTimeout time.Duration
}

func newSenderService(
	messageRepo contracts.MessageRepository,
	patientRepo contracts.PatientRepository,
	registry contracts.NotifierRegistry,
	sendTimeout time.Duration,
) *senderService {
	return &senderService{
		messageRepo: messageRepo,
		patientRepo: patientRepo,
		registry:    registry,
		sendTimeout: sendTimeout,
	}
}

// resolveMessage picks an explicit template when messageID is given,
// otherwise the clinic-preferred template for the channel/step.
func (s *senderService) resolveMessage(ctx context.Context, channel string, step int, clinicID, messageID string) (*models.Message, error) {
	if messageID != "" {
		msg, err := s.messageRepo.FindByID(ctx, messageID)
		if err != nil {
			return nil, err
		}
		if msg == nil {
			return nil, exceptions.ErrMessageTemplateNotFound(fmt.Errorf("message %s does not exist", messageID))
		}
		return msg, nil
	}

	msg, err := s.messageRepo.GetMessage(ctx, channel, step, clinicID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, exceptions.ErrMessageTemplateNotFound(fmt.Errorf("no template for channel %s step %d", channel, step))
	}
	return msg, nil
}

// deliver renders the template and sends it. Returned errors carry the
// permanent/temporary classification from the notifiers package.
func (s *senderService) deliver(ctx context.Context, schedule *models.ContactSchedule, msg *models.Message, inst *models.Installment) error {
	patient, err := s.patientRepo.FindByID(ctx, schedule.PatientID)
	if err != nil {
		return notifiers.Temporary(err)
	}
	if patient == nil {
		return notifiers.Permanent(errors.New("patient " + schedule.PatientID + " does not exist"))
	}

	templateCtx := map[string]string{"Name": patient.Name}
	if inst != nil {
		templateCtx["Amount"] = fmt.Sprintf("%.2f", inst.Amount)
		templateCtx["DueDate"] = inst.DueDate.Format("02/01/2006")
	}
	content, err := utils.RenderMessage(msg.Content, templateCtx)
	if err != nil {
		// A broken template will never render, retrying is pointless.
		return notifiers.Permanent(err)
	}

	notifier, err := s.registry.Get(schedule.Channel)
	if err != nil {
		return notifiers.Permanent(exceptions.ErrNotifierNotConfigured(err, schedule.Channel))
	}

	sendCtx := ctx
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	return notifier.Send(sendCtx, contracts.ContactInfo{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Email:       patient.Email,
		Phone:       patient.Phone,
		Address:     patient.Address,
		ClinicID:    schedule.ClinicID,
		ContractID:  schedule.ContractID,
	}, content)
}
