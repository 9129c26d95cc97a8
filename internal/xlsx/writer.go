package xlsx

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

// stateFill maps each assignment state to its header-adjacent fill colour
// (§4.10): UNDER red, OVER yellow, LIMITE orange, OK green.
var stateFill = map[model.State]string{
	model.StateUnder:  "FF0000",
	model.StateOver:   "FFFF00",
	model.StateLimite: "FFA500",
	model.StateOK:     "00FF00",
}

const (
	weekdayHeaderFill = "FFC000"
	otherHeaderFill   = "538DD5"
)

// Report holds one service's computed report, the shape WriteReport
// serialises into the five logical sheets of §6.
type Report struct {
	Service    model.ServiceInfo
	Nominal    []model.AssignmentRow
	Simulated  []model.AssignmentRow
	Movements  []model.Movement
	Escalation []model.EscalationStep
}

// WriteReport renders one or more services' reports into a single
// workbook. In multi-service mode (len(reports) > 1) every sheet name is
// prefixed with the service's 12-character key truncation; a single report
// gets unprefixed sheet names whatever its key.
func WriteReport(reports []Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, &staffing.ValidationError{Field: "reports", Msg: "no services to report"}
	}

	f := excelize.NewFile()
	defer f.Close()

	multi := len(reports) > 1
	styles, err := newStateStyles(f)
	if err != nil {
		return nil, &staffing.ResourceError{Op: "build report styles", Err: err}
	}

	firstSheet := "Sheet1"
	usedFirst := false

	for _, r := range reports {
		prefix := ""
		if multi {
			prefix = r.Service.SheetPrefix() + "_"
		}

		if err := writeAssignmentSheet(f, prefix+"Nomina", r.Nominal, false, styles); err != nil {
			return nil, err
		}
		if err := writeAssignmentSheet(f, prefix+"Simulacion", r.Simulated, true, styles); err != nil {
			return nil, err
		}
		if len(r.Movements) > 0 {
			if err := writeMovementsSheet(f, prefix+"Movimientos", r.Movements); err != nil {
				return nil, err
			}
		}
		if err := writeEscSugSheet(f, prefix+"Sim_EscSug", r.Simulated, styles); err != nil {
			return nil, err
		}
		if len(r.Escalation) > 0 {
			if err := writeEscalonadosSheet(f, prefix+"Mov_Escalonados", r.Escalation); err != nil {
				return nil, err
			}
		}

		if !usedFirst {
			firstSheet = prefix + "Nomina"
			usedFirst = true
		}
	}

	if firstSheet != "Sheet1" {
		f.SetActiveSheet(indexOf(f, firstSheet))
		_ = f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, &staffing.ResourceError{Op: "serialize report workbook", Err: err}
	}
	return buf.Bytes(), nil
}

type stateStyles map[model.State]int

func newStateStyles(f *excelize.File) (stateStyles, error) {
	styles := make(stateStyles, len(stateFill))
	for state, color := range stateFill {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, err
		}
		styles[state] = id
	}
	return styles, nil
}

func indexOf(f *excelize.File, sheet string) int {
	idx, _ := f.GetSheetIndex(sheet)
	return idx
}

func newSheet(f *excelize.File, name string) error {
	_, err := f.NewSheet(name)
	return err
}

func assignmentHeaders(withMovements bool) []string {
	h := []string{
		"Fecha", "Intervalo", "Prime", "Requerido", "L", "U",
		"Faltante", "Sobrante", "Count", "Estado", "Lideres", "Presentes",
	}
	if withMovements {
		h = append(h, "Movimientos")
	}
	return h
}

func writeAssignmentSheet(f *excelize.File, sheet string, rows []model.AssignmentRow, withMovements bool, styles stateStyles) error {
	if err := newSheet(f, sheet); err != nil {
		return &staffing.ResourceError{Op: "create sheet " + sheet, Err: err}
	}

	headers := assignmentHeaders(withMovements)
	writeHeaderRow(f, sheet, headers)

	for i, r := range rows {
		excelRow := i + 2
		vals := []any{
			r.Date.Format("2006-01-02"), minutesLabel(r.Interval), r.Prime,
			r.Required, r.Lower, r.Upper, r.Shortage, r.Surplus, r.Count,
			string(r.State), joinNames(r.Leaders), joinNames(r.PresentNames),
		}
		if withMovements {
			vals = append(vals, r.Movements)
		}
		for c, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(c+1, excelRow)
			_ = f.SetCellValue(sheet, cell, v)
		}
		if styleID, ok := styles[r.State]; ok {
			stateCol := 10 // "Estado" is the 10th column
			cell, _ := excelize.CoordinatesToCellName(stateCol, excelRow)
			_ = f.SetCellStyle(sheet, cell, cell, styleID)
		}
	}
	return nil
}

func writeEscSugSheet(f *excelize.File, sheet string, rows []model.AssignmentRow, styles stateStyles) error {
	if err := newSheet(f, sheet); err != nil {
		return &staffing.ResourceError{Op: "create sheet " + sheet, Err: err}
	}

	headers := append(assignmentHeaders(true), "Escalona_Sugerida")
	writeHeaderRow(f, sheet, headers)

	for i, r := range rows {
		excelRow := i + 2
		vals := []any{
			r.Date.Format("2006-01-02"), minutesLabel(r.Interval), r.Prime,
			r.Required, r.Lower, r.Upper, r.Shortage, r.Surplus, r.Count,
			string(r.State), joinNames(r.Leaders), joinNames(r.PresentNames),
			r.Movements, r.Escalation,
		}
		for c, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(c+1, excelRow)
			_ = f.SetCellValue(sheet, cell, v)
		}
		if styleID, ok := styles[r.State]; ok {
			cell, _ := excelize.CoordinatesToCellName(10, excelRow)
			_ = f.SetCellStyle(sheet, cell, cell, styleID)
		}
	}
	return nil
}

func writeMovementsSheet(f *excelize.File, sheet string, movements []model.Movement) error {
	if err := newSheet(f, sheet); err != nil {
		return &staffing.ResourceError{Op: "create sheet " + sheet, Err: err}
	}
	writeHeaderRow(f, sheet, []string{"Fecha", "Intervalo", "Move", "From", "To"})

	for i, mv := range movements {
		excelRow := i + 2
		vals := []any{mv.Date.Format("2006-01-02"), minutesLabel(mv.Interval), mv.Move, mv.From, mv.To}
		for c, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(c+1, excelRow)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func writeEscalonadosSheet(f *excelize.File, sheet string, steps []model.EscalationStep) error {
	if err := newSheet(f, sheet); err != nil {
		return &staffing.ResourceError{Op: "create sheet " + sheet, Err: err}
	}
	writeHeaderRow(f, sheet, []string{"Fecha", "Move", "From", "To"})

	for i, s := range steps {
		excelRow := i + 2
		vals := []any{s.Date.Format("2006-01-02"), s.Move, s.From, s.To}
		for c, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(c+1, excelRow)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func minutesLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ";"
		}
		out += n
	}
	return out
}

// WriteWeekGrids renders one sheet per ISO week (§6's week-grid file),
// named "Sem YYYY-MM-DD" after the week's Monday, sheets in week order.
func WriteWeekGrids(grids map[time.Time][]model.WeekGridRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	boldFont := &excelize.Font{Bold: true}
	weekdayStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{weekdayHeaderFill}, Pattern: 1},
		Font: boldFont,
	})
	if err != nil {
		return nil, &staffing.ResourceError{Op: "build week-grid styles", Err: err}
	}
	otherStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{otherHeaderFill}, Pattern: 1},
		Font: boldFont,
	})
	if err != nil {
		return nil, &staffing.ResourceError{Op: "build week-grid styles", Err: err}
	}

	weeks := make([]time.Time, 0, len(grids))
	for w := range grids {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	headers := []string{"DNI", "Nombre", "SERVICIO", "SUPERIOR", "Intervalo"}
	for _, wd := range model.WeekdayNames {
		headers = append(headers, wd)
	}
	for _, wd := range model.WeekdayNames {
		headers = append(headers, "Break_"+wd)
	}

	for wi, week := range weeks {
		sheet := "Sem " + week.Format("2006-01-02")
		if wi == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else if err := newSheet(f, sheet); err != nil {
			return nil, &staffing.ResourceError{Op: "create sheet " + sheet, Err: err}
		}

		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(sheet, cell, h)
			style := otherStyle
			if i >= 5 && i < 12 {
				style = weekdayStyle
			}
			_ = f.SetCellStyle(sheet, cell, cell, style)
		}

		for ri, row := range grids[week] {
			excelRow := ri + 2
			vals := []any{row.DNI, row.Name, row.Service, row.Superior, row.Entry}
			for d := 0; d < 7; d++ {
				if row.Present[d] {
					vals = append(vals, 1)
				} else {
					vals = append(vals, "Franco")
				}
			}
			for d := 0; d < 7; d++ {
				vals = append(vals, row.Break[d])
			}
			for c, v := range vals {
				cell, _ := excelize.CoordinatesToCellName(c+1, excelRow)
				_ = f.SetCellValue(sheet, cell, v)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, &staffing.ResourceError{Op: "serialize week-grid workbook", Err: err}
	}
	return buf.Bytes(), nil
}
