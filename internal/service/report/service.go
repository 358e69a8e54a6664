package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// exportColumns is the fixed column order of every attendance export.
var exportColumns = []string{
	"rut", "name", "location_text", "latitude", "longitude",
	"timestamp", "timezone_label", "kind",
}

// Export is a generated report file ready to be served.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService serializes filtered ledger views to tabular files.
type ReportService interface {
	ExportAttendance(ctx context.Context, month *string, format string) (Export, error)
}

type ReportServiceImpl struct {
	ledgerRepo attendance.LedgerRepository
}

func NewReportService(ledgerRepo attendance.LedgerRepository) ReportService {
	return &ReportServiceImpl{
		ledgerRepo: ledgerRepo,
	}
}

// ExportAttendance implements ReportService. An empty filtered set produces
// a header-only file, never an error.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, month *string, format string) (Export, error) {
	var errs validator.ValidationErrors
	if month != nil && *month != "" && !validator.IsValidMonth(*month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if format != FormatCSV && format != FormatXLSX {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}
	if len(errs) > 0 {
		return Export{}, errs
	}

	events, err := s.ledgerRepo.List(ctx, month)
	if err != nil {
		return Export{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	period := "completo"
	if month != nil && *month != "" {
		period = *month
	}

	switch format {
	case FormatXLSX:
		data, err := renderXLSX(events)
		if err != nil {
			return Export{}, err
		}
		return Export{
			Filename:    fmt.Sprintf("reporte_asistencia_%s.xlsx", period),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		data, err := renderCSV(events)
		if err != nil {
			return Export{}, err
		}
		return Export{
			Filename:    fmt.Sprintf("reporte_asistencia_%s.csv", period),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

func eventRow(ev attendance.Event) []string {
	row := make([]string, len(exportColumns))
	row[0] = ev.RUT
	row[1] = ev.Name
	if ev.LocationText != nil {
		row[2] = *ev.LocationText
	}
	if ev.Latitude != nil {
		row[3] = strconv.FormatFloat(*ev.Latitude, 'f', -1, 64)
	}
	if ev.Longitude != nil {
		row[4] = strconv.FormatFloat(*ev.Longitude, 'f', -1, 64)
	}
	row[5] = ev.RecordedAt.UTC().Format(attendance.TimestampLayout)
	if ev.TimezoneLabel != nil {
		row[6] = *ev.TimezoneLabel
	}
	row[7] = string(ev.Kind)
	return row
}

func renderCSV(events []attendance.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, ev := range events {
		if err := w.Write(eventRow(ev)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func renderXLSX(events []attendance.Event) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Asistencia"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write xlsx header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(exportColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style xlsx header: %w", err)
	}

	for i, ev := range events {
		row := eventRow(ev)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write xlsx row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
