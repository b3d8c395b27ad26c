package reports

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const contactHistorySheet = "Contact History"

type reportUsecase struct {
	HistoryRepository contracts.ContactHistoryRepository
	PatientRepository contracts.PatientRepository
}

func NewReportUsecase(
	historyRepository contracts.ContactHistoryRepository,
	patientRepository contracts.PatientRepository,
) contracts.ReportUsecase {
	return &reportUsecase{
		HistoryRepository: historyRepository,
		PatientRepository: patientRepository,
	}
}

func (uc *reportUsecase) BuildContactHistoryReport(ctx context.Context, clinicID string, from, to time.Time) ([]byte, string, error) {
	histories, err := uc.HistoryRepository.ListByClinicBetween(ctx, clinicID, from, to)
	if err != nil {
		return nil, "", err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheetIndex, err := workbook.NewSheet(contactHistorySheet)
	if err != nil {
		return nil, "", exceptions.ErrReportBuild(err)
	}
	workbook.SetActiveSheet(sheetIndex)
	workbook.DeleteSheet("Sheet1")

	headers := []string{"Sent At", "Patient", "Channel", "Step", "Success", "Trigger", "Observation"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := workbook.SetCellValue(contactHistorySheet, cell, header); err != nil {
			return nil, "", exceptions.ErrReportBuild(err)
		}
	}

	// Patient names are resolved once per patient, histories repeat them.
	patientNames := make(map[string]string)
	for rowIdx, history := range histories {
		name, ok := patientNames[history.PatientID]
		if !ok {
			patient, err := uc.PatientRepository.FindByID(ctx, history.PatientID)
			if err != nil {
				return nil, "", err
			}
			if patient != nil {
				name = patient.Name
			}
			patientNames[history.PatientID] = name
		}

		values := []interface{}{
			history.SentAt.Format(time.RFC3339),
			name,
			history.ContactType,
			history.Step,
			history.Success,
			history.NotificationTrigger,
			history.Observation,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := workbook.SetCellValue(contactHistorySheet, cell, value); err != nil {
				return nil, "", exceptions.ErrReportBuild(err)
			}
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, "", exceptions.ErrReportBuild(err)
	}

	filename := fmt.Sprintf("contact-history-%s-%s.xlsx", clinicID, from.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
