// Package report renders collection data into PDF documents: the student
// roster, the fee ledger with per-status totals, and the attendance sheet.
// Reports are built from the local cache, so they work offline.
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"github.com/Tanzeel8246/madrasa/internal/config"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/internal/service"
	"github.com/Tanzeel8246/madrasa/models"
)

// ErrNoLicenseKey is returned when a report is requested without a PDF
// license key configured (UNIDOC_LICENSE_API_KEY or the exports config).
var ErrNoLicenseKey = errors.New("pdf export requires a license key")

// the PDF library holds the activated license in process-wide state, so the
// key is applied at most once
var (
	licenseOnce sync.Once
	licenseErr  error
)

func activateLicense(key string) error {
	licenseOnce.Do(func() {
		licenseErr = license.SetMeteredKey(key)
	})
	return licenseErr
}

// Exporter renders PDF reports into the configured exports directory.
type Exporter struct {
	collections service.CollectionService
	dir         string
	fontPath    string
	licenseKey  string
	logger      *logger.Logger

	now func() time.Time
}

// NewExporter creates an Exporter writing into cfg.Dir. When cfg.FontPath
// names a TTF file it is embedded so Urdu text renders correctly; otherwise
// the standard Helvetica fonts are used. cfg.LicenseKey activates the PDF
// library on first use; exporting without one fails with [ErrNoLicenseKey].
func NewExporter(collections service.CollectionService, cfg config.ClientExports, log *logger.Logger) *Exporter {
	return &Exporter{
		collections: collections,
		dir:         cfg.Dir,
		fontPath:    cfg.FontPath,
		licenseKey:  cfg.LicenseKey,
		logger:      log,
		now:         time.Now,
	}
}

// StudentsRoster renders the full student roster and returns the path of the
// written file.
func (e *Exporter) StudentsRoster(ctx context.Context) (string, error) {
	rows, err := e.collections.List(ctx, models.TableStudents)
	if err != nil {
		return "", fmt.Errorf("load students: %w", err)
	}

	students := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		var s models.Student
		if err = row.Decode(&s); err != nil {
			return "", fmt.Errorf("decode student %s: %w", row.ID(), err)
		}
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })

	doc, fonts, err := e.newDocument("Students Roster")
	if err != nil {
		return "", err
	}

	table := doc.NewTable(5)
	e.headerRow(doc, table, fonts, "Name", "Father's Name", "Class", "Grade", "Status")
	for _, s := range students {
		e.bodyRow(doc, table, fonts, s.Name, s.FatherName, s.ClassID, s.Grade, s.Status)
	}
	if err = doc.Draw(table); err != nil {
		return "", fmt.Errorf("draw roster table: %w", err)
	}

	summary := doc.NewParagraph(fmt.Sprintf("Total students: %d", len(students)))
	summary.SetFont(fonts.bold)
	summary.SetMargins(0, 0, 12, 0)
	if err = doc.Draw(summary); err != nil {
		return "", fmt.Errorf("draw roster summary: %w", err)
	}

	return e.write(ctx, doc, "students")
}

// FeesLedger renders every fee entry with a per-status total block.
func (e *Exporter) FeesLedger(ctx context.Context) (string, error) {
	rows, err := e.collections.List(ctx, models.TableFees)
	if err != nil {
		return "", fmt.Errorf("load fees: %w", err)
	}

	fees := make([]models.Fee, 0, len(rows))
	for _, row := range rows {
		var f models.Fee
		if err = row.Decode(&f); err != nil {
			return "", fmt.Errorf("decode fee %s: %w", row.ID(), err)
		}
		fees = append(fees, f)
	}
	sort.Slice(fees, func(i, j int) bool { return fees[i].DueDate < fees[j].DueDate })

	doc, fonts, err := e.newDocument("Fee Ledger")
	if err != nil {
		return "", err
	}

	table := doc.NewTable(5)
	e.headerRow(doc, table, fonts, "Student", "Type", "Amount", "Due Date", "Status")
	totals := map[string]float64{}
	for _, f := range fees {
		totals[f.Status] += f.Amount
		e.bodyRow(doc, table, fonts,
			f.StudentID, f.FeeType, fmt.Sprintf("%.2f", f.Amount), f.DueDate, f.Status)
	}
	if err = doc.Draw(table); err != nil {
		return "", fmt.Errorf("draw fee table: %w", err)
	}

	for _, status := range []string{models.FeePaid, models.FeePending, models.FeeOverdue} {
		line := doc.NewParagraph(fmt.Sprintf("Total %s: %.2f", status, totals[status]))
		line.SetFont(fonts.bold)
		line.SetMargins(0, 0, 6, 0)
		if err = doc.Draw(line); err != nil {
			return "", fmt.Errorf("draw fee totals: %w", err)
		}
	}

	return e.write(ctx, doc, "fees")
}

// AttendanceSheet renders the attendance entries for date (YYYY-MM-DD). An
// empty date includes every cached entry.
func (e *Exporter) AttendanceSheet(ctx context.Context, date string) (string, error) {
	rows, err := e.collections.List(ctx, models.TableAttendance)
	if err != nil {
		return "", fmt.Errorf("load attendance: %w", err)
	}

	entries := make([]models.AttendanceEntry, 0, len(rows))
	for _, row := range rows {
		var a models.AttendanceEntry
		if err = row.Decode(&a); err != nil {
			return "", fmt.Errorf("decode attendance %s: %w", row.ID(), err)
		}
		if date != "" && a.Date != date {
			continue
		}
		entries = append(entries, a)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].StudentID < entries[j].StudentID
	})

	title := "Attendance Sheet"
	if date != "" {
		title += " " + date
	}
	doc, fonts, err := e.newDocument(title)
	if err != nil {
		return "", err
	}

	table := doc.NewTable(4)
	e.headerRow(doc, table, fonts, "Student", "Date", "Time", "Status")
	present := 0
	for _, a := range entries {
		if a.Status == models.AttendancePresent {
			present++
		}
		e.bodyRow(doc, table, fonts, a.StudentID, a.Date, a.Time, a.Status)
	}
	if err = doc.Draw(table); err != nil {
		return "", fmt.Errorf("draw attendance table: %w", err)
	}

	summary := doc.NewParagraph(fmt.Sprintf("Present %d of %d", present, len(entries)))
	summary.SetFont(fonts.bold)
	summary.SetMargins(0, 0, 12, 0)
	if err = doc.Draw(summary); err != nil {
		return "", fmt.Errorf("draw attendance summary: %w", err)
	}

	return e.write(ctx, doc, "attendance")
}

type fontPair struct {
	regular *model.PdfFont
	bold    *model.PdfFont
}

func (e *Exporter) newDocument(title string) (*creator.Creator, fontPair, error) {
	fonts, err := e.loadFonts()
	if err != nil {
		return nil, fontPair{}, err
	}

	doc := creator.New()
	doc.SetPageMargins(40, 40, 40, 40)

	heading := doc.NewParagraph(title)
	heading.SetFont(fonts.bold)
	heading.SetFontSize(18)
	heading.SetMargins(0, 0, 0, 16)
	if err = doc.Draw(heading); err != nil {
		return nil, fontPair{}, fmt.Errorf("draw report heading: %w", err)
	}

	return doc, fonts, nil
}

// loadFonts falls back to the standard Helvetica pair when no TTF font is
// configured. A composite TTF is required for Urdu glyphs.
func (e *Exporter) loadFonts() (fontPair, error) {
	if e.fontPath != "" {
		custom, err := model.NewCompositePdfFontFromTTFFile(e.fontPath)
		if err != nil {
			return fontPair{}, fmt.Errorf("load report font %q: %w", e.fontPath, err)
		}
		return fontPair{regular: custom, bold: custom}, nil
	}

	regular, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return fontPair{}, fmt.Errorf("load standard font: %w", err)
	}
	bold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return fontPair{}, fmt.Errorf("load standard bold font: %w", err)
	}
	return fontPair{regular: regular, bold: bold}, nil
}

func (e *Exporter) headerRow(doc *creator.Creator, table *creator.Table, fonts fontPair, titles ...string) {
	for _, title := range titles {
		p := doc.NewParagraph(title)
		p.SetFont(fonts.bold)
		p.SetFontSize(11)

		cell := table.NewCell()
		cell.SetBorder(creator.CellBorderSideAll, creator.CellBorderStyleSingle, 1)
		cell.SetIndent(4)
		_ = cell.SetContent(p)
	}
}

func (e *Exporter) bodyRow(doc *creator.Creator, table *creator.Table, fonts fontPair, values ...string) {
	for _, value := range values {
		if value == "" {
			value = "-"
		}
		p := doc.NewParagraph(value)
		p.SetFont(fonts.regular)
		p.SetFontSize(10)

		cell := table.NewCell()
		cell.SetBorder(creator.CellBorderSideAll, creator.CellBorderStyleSingle, 1)
		cell.SetIndent(4)
		_ = cell.SetContent(p)
	}
}

func (e *Exporter) write(ctx context.Context, doc *creator.Creator, kind string) (string, error) {
	if e.licenseKey == "" {
		return "", fmt.Errorf("%w: set UNIDOC_LICENSE_API_KEY or storage.exports.license_key", ErrNoLicenseKey)
	}
	if err := activateLicense(e.licenseKey); err != nil {
		return "", fmt.Errorf("activate pdf license: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create exports dir %q: %w", e.dir, err)
	}

	name := fmt.Sprintf("%s-%s.pdf", kind, e.now().Format("2006-01-02-150405"))
	path := filepath.Join(e.dir, name)
	if err := doc.WriteToFile(path); err != nil {
		return "", fmt.Errorf("write report %q: %w", path, err)
	}

	logger.FromContext(ctx).Info().
		Str("report", kind).
		Str("path", path).
		Msg("report written")

	return path, nil
}
