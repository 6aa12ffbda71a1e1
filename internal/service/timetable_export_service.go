package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/noah-isme/sma-class-api/internal/dto"
	"github.com/noah-isme/sma-class-api/internal/models"
	appErrors "github.com/noah-isme/sma-class-api/pkg/errors"
	"github.com/noah-isme/sma-class-api/pkg/export"
)

// Export formats accepted by the timetable export endpoint.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type timetableSource interface {
	Get(ctx context.Context, id string) (*models.Class, error)
	Schedule(ctx context.Context, classID string) ([]dto.DaySchedule, error)
}

// ExportFile is a rendered timetable document.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// TimetableExportService renders a class's weekly timetable as CSV or PDF.
type TimetableExportService struct {
	source timetableSource
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
}

// NewTimetableExportService constructs the export service.
func NewTimetableExportService(source timetableSource) *TimetableExportService {
	return &TimetableExportService{
		source: source,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
	}
}

// Export renders the class timetable in the requested format.
func (s *TimetableExportService) Export(ctx context.Context, classID, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	class, err := s.source.Get(ctx, classID)
	if err != nil {
		return nil, err
	}
	days, err := s.source.Schedule(ctx, classID)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Headers: []string{"Day", "Start", "End", "Subject"},
	}
	for _, day := range days {
		for _, period := range day.Periods {
			subject := ""
			if period.SubjectName != nil {
				subject = *period.SubjectName
			}
			table.Rows = append(table.Rows, []string{day.Day, period.StartTime, period.EndTime, subject})
		}
	}

	base := strings.ReplaceAll(strings.ToLower(class.Name), " ", "-")
	switch format {
	case ExportFormatPDF:
		content, err := s.pdf.Render(table, fmt.Sprintf("%s weekly timetable", class.Name))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable pdf")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: base + "-timetable.pdf"}, nil
	default:
		content, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable csv")
		}
		return &ExportFile{Content: content, ContentType: "text/csv", Filename: base + "-timetable.csv"}, nil
	}
}
