package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)
	path := filepath.Join(t.TempDir(), "recipients.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRecipientsFromWorkbook(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Name")
		f.SetCellValue("Sheet1", "B1", "Mobile")
		f.SetCellValue("Sheet1", "A2", "Alice")
		f.SetCellValue("Sheet1", "B2", "+12125551212")
		f.SetCellValue("Sheet1", "A3", "Bob") // no number for Bob
		f.SetCellValue("Sheet1", "A4", "Carol")
		f.SetCellValue("Sheet1", "B4", "+442012341234")
	})

	recipients, err := recipientsFromWorkbook(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"+12125551212", "+442012341234"}, recipients)
}

func TestRecipientsFromWorkbookHeaderCaseInsensitive(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "TELEPHONE")
		f.SetCellValue("Sheet1", "A2", "+12125551212")
	})

	recipients, err := recipientsFromWorkbook(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"+12125551212"}, recipients)
}

func TestRecipientsFromWorkbookSecondSheet(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Notes")
		_, err := f.NewSheet("Contacts")
		require.NoError(t, err)
		f.SetCellValue("Contacts", "A1", "sms")
		f.SetCellValue("Contacts", "A2", "+14155552671")
	})

	recipients, err := recipientsFromWorkbook(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"+14155552671"}, recipients)
}

func TestRecipientsFromWorkbookNoMatchingColumn(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Name")
		f.SetCellValue("Sheet1", "B1", "Email")
	})

	_, err := recipientsFromWorkbook(path)

	assert.ErrorIs(t, err, errNoRecipientColumn)
}

func TestRecipientsFromWorkbookEmptyColumn(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "cell")
	})

	_, err := recipientsFromWorkbook(path)

	assert.ErrorIs(t, err, errNoRecipients)
}

func TestRecipientsFromWorkbookMissingFile(t *testing.T) {
	_, err := recipientsFromWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.Error(t, err)
}
