package xlsx_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
	"github.com/JoakoBallesteros/workforce-staffing/internal/xlsx"
)

func writeTempWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	build(f)
	path := filepath.Join(t.TempDir(), "wb.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadRoster(t *testing.T) {
	path := writeTempWorkbook(t, func(f *excelize.File) {
		_ = f.SetSheetRow("Sheet1", "A1", &[]any{"NOMBRE", "DNI", "SUPERIOR", "INGRESO", "SERVICIO", "ACTIVO", "CONTRATO"})
		_ = f.SetSheetRow("Sheet1", "A2", &[]any{"Ana Diaz", "1", "Lead", "08:00:00", "Internet", "ACTIVO", "24HS"})
	})

	tbl, err := xlsx.ReadRoster(path)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Ana Diaz", tbl.At(0).String("NOMBRE"))
	assert.Equal(t, "24HS", tbl.At(0).String("CONTRATO"))
}

func TestReadRosterEmptySheet(t *testing.T) {
	path := writeTempWorkbook(t, func(f *excelize.File) {})
	_, err := xlsx.ReadRoster(path)
	require.Error(t, err)
	var ve *staffing.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestReadDemandSheetSkipsTitleAndBlankRows(t *testing.T) {
	path := writeTempWorkbook(t, func(f *excelize.File) {
		_ = f.NewSheet("Sop_Conectividad")
		_ = f.SetSheetRow("Sop_Conectividad", "A1", &[]any{"Demand title"})
		_ = f.SetSheetRow("Sop_Conectividad", "A2", &[]any{""})
		_ = f.SetSheetRow("Sop_Conectividad", "A3", &[]any{"interval", "2024-06-03"})
		_ = f.SetSheetRow("Sop_Conectividad", "A4", &[]any{"08:00:00", 3})
		_ = f.SetSheetRow("Sop_Conectividad", "A5", &[]any{"09:00:00", 4})
	})

	svc, _ := model.LookupService(model.ServiceSopConectividad)
	tbl, err := xlsx.ReadDemandSheet(path, svc)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "08:00:00", tbl.At(0).String(staffing.IntervalColumn))
	assert.Equal(t, 3, tbl.At(0).Int("2024-06-03"))
	assert.Equal(t, "09:00:00", tbl.At(1).String(staffing.IntervalColumn))
}

func TestReadDemandSheetMissingSheet(t *testing.T) {
	path := writeTempWorkbook(t, func(f *excelize.File) {})
	svc, _ := model.LookupService(model.ServiceCBS)
	_, err := xlsx.ReadDemandSheet(path, svc)
	require.Error(t, err)
	var ve *staffing.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestReadRosterMissingFile(t *testing.T) {
	_, err := xlsx.ReadRoster(filepath.Join(t.TempDir(), "does-not-exist.xlsx"))
	require.Error(t, err)
	var re *staffing.ResourceError
	assert.ErrorAs(t, err, &re)
}
