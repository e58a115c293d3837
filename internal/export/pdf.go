// Package export writes picker months and selections to PDF and iCalendar.
package export

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	pdfCellWidth  = 26.0
	pdfCellHeight = 18.0
	pdfHeadHeight = 8.0
)

// WritePDF renders one page per month to path.
func WritePDF(path string, svc *calendar.Service, months []models.CalendarMonth, opt models.ModalOptions, selection []*models.CalendarDay) error {
	pdf := buildPDF(svc, months, opt, selection)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// RenderPDF is WritePDF for an arbitrary writer.
func RenderPDF(w io.Writer, svc *calendar.Service, months []models.CalendarMonth, opt models.ModalOptions, selection []*models.CalendarDay) error {
	pdf := buildPDF(svc, months, opt, selection)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func buildPDF(svc *calendar.Service, months []models.CalendarMonth, opt models.ModalOptions, selection []*models.CalendarDay) *fpdf.Fpdf {
	selected := make(map[int64]bool, len(selection))
	for _, d := range selection {
		if d != nil {
			selected[svc.DayKey(d.Time)] = true
		}
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(config.AppName, false)
	for _, month := range months {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(0, 12, svc.FormatMillis(month.Original.Time, opt.MonthFormat))
		pdf.Ln(14)

		pdf.SetFont("Arial", "B", 11)
		for i := range opt.Weekdays {
			label := opt.Weekdays[(i+opt.WeekStart)%len(opt.Weekdays)]
			pdf.CellFormat(pdfCellWidth, pdfHeadHeight, label, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		for i, d := range month.Days {
			drawDay(pdf, d, selected)
			if (i+1)%config.WeekLength == 0 {
				pdf.Ln(-1)
			}
		}
		if len(month.Days)%config.WeekLength != 0 {
			pdf.Ln(-1)
		}
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.Cell(0, 6, fmt.Sprintf("Selected days: %d", countIn(month, selected, svc)))
	}
	return pdf
}

func drawDay(pdf *fpdf.Fpdf, d *models.CalendarDay, selected map[int64]bool) {
	if d == nil {
		pdf.CellFormat(pdfCellWidth, pdfCellHeight, "", "1", 0, "", false, 0, "")
		return
	}
	fill := false
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	switch {
	case selected[d.Time]:
		pdf.SetFillColor(51, 102, 204)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 12)
		fill = true
	case d.Disable:
		pdf.SetTextColor(160, 160, 160)
	case d.Marked:
		pdf.SetFont("Arial", "U", 12)
	}
	text := d.Title
	if d.SubTitle != "" {
		text += "\n" + d.SubTitle
	}
	x, y := pdf.GetXY()
	pdf.MultiCell(pdfCellWidth, pdfCellHeight/2, text, "", "C", fill)
	pdf.SetXY(x, y)
	pdf.CellFormat(pdfCellWidth, pdfCellHeight, "", "1", 0, "", false, 0, "")
}

func countIn(month models.CalendarMonth, selected map[int64]bool, svc *calendar.Service) int {
	n := 0
	for _, d := range month.Days {
		if d != nil && selected[svc.DayKey(d.Time)] {
			n++
		}
	}
	return n
}
