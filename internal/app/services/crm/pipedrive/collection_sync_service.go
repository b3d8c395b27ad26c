package pipedrive

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/pkg/constvars"
	"fmt"

	"go.uber.org/zap"
)

// CollectionSyncService mirrors collection cases into Pipedrive: when a
// contract is handed off to cordial billing it creates (or reuses) the
// person and opens a deal, and logs later contact outcomes as activities.
type CollectionSyncService struct {
	PipedriveClient          contracts.PipedriveClient
	CollectionCaseRepository contracts.CollectionCaseRepository
	PatientRepository        contracts.PatientRepository
	Log                      *zap.Logger
}

func NewCollectionSyncService(
	pipedriveClient contracts.PipedriveClient,
	collectionCaseRepository contracts.CollectionCaseRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) *CollectionSyncService {
	return &CollectionSyncService{
		PipedriveClient:          pipedriveClient,
		CollectionCaseRepository: collectionCaseRepository,
		PatientRepository:        patientRepository,
		Log:                      logger,
	}
}

// Register wires the sync into the event flow.
func (svc *CollectionSyncService) Register(dispatcher contracts.EventDispatcher) {
	dispatcher.Subscribe(events.FlowExhaustedName, svc.HandleFlowExhausted)
	dispatcher.Subscribe(events.ContactRecordedName, svc.HandleContactRecorded)
}

func (svc *CollectionSyncService) HandleFlowExhausted(ctx context.Context, event contracts.Event) error {
	exhausted, ok := event.(events.FlowExhausted)
	if !ok {
		return nil
	}

	collectionCase, err := svc.CollectionCaseRepository.FindOpenByContract(ctx, exhausted.ContractID)
	if err != nil {
		return err
	}
	if collectionCase == nil || collectionCase.DealID != "" {
		return nil
	}

	patient, err := svc.PatientRepository.FindByID(ctx, exhausted.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return nil
	}

	personID, err := svc.PipedriveClient.SearchPersonByName(ctx, patient.Name)
	if err != nil {
		return err
	}
	if personID == "" {
		personID, err = svc.PipedriveClient.CreatePerson(ctx, patient.Name, patient.Email, patient.Phone)
		if err != nil {
			return err
		}
	}

	title := fmt.Sprintf("Cobrança amigável - %s", patient.Name)
	dealID, err := svc.PipedriveClient.CreateDeal(ctx, personID, title, collectionCase.Amount)
	if err != nil {
		return err
	}

	collectionCase.DealID = dealID
	if err := svc.CollectionCaseRepository.Update(ctx, collectionCase); err != nil {
		return err
	}

	svc.Log.Info("CollectionSyncService.HandleFlowExhausted created deal",
		zap.String(constvars.LoggingContractIDKey, exhausted.ContractID),
		zap.String(constvars.LoggingDealIDKey, dealID),
	)
	return nil
}

// HandleContactRecorded appends contact outcomes as deal activities for
// contracts that already have an open case in the CRM.
func (svc *CollectionSyncService) HandleContactRecorded(ctx context.Context, event contracts.Event) error {
	recorded, ok := event.(events.ContactRecorded)
	if !ok {
		return nil
	}

	collectionCase, err := svc.CollectionCaseRepository.FindOpenByContract(ctx, recorded.ContractID)
	if err != nil {
		return err
	}
	if collectionCase == nil || collectionCase.DealID == "" {
		return nil
	}

	outcome := "sem sucesso"
	if recorded.Success {
		outcome = "com sucesso"
	}
	subject := fmt.Sprintf("Contato %s (etapa %d)", recorded.Channel, recorded.Step)
	note := fmt.Sprintf("Contato via %s na etapa %d finalizado %s em %s.",
		recorded.Channel, recorded.Step, outcome, recorded.SentAt.Format("02/01/2006 15:04"))
	return svc.PipedriveClient.CreateActivity(ctx, collectionCase.DealID, subject, note)
}
