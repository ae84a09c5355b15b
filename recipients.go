package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// recipientHeaders are the row-1 header names that mark a column of
// recipient phone numbers, matched case-insensitively.
var recipientHeaders = []string{"sms", "cell", "mobile", "telephone"}

var (
	errNoRecipientColumn = errors.New("could not find an appropriate recipient column")
	errNoRecipients      = errors.New("could not find any recipients")
)

// recipientsFromWorkbook extracts the raw recipient strings from an
// XLSX workbook. Worksheets are scanned in order; the first column
// whose header row matches one of recipientHeaders wins, and its cell
// values from row 2 down are returned in row order. Blank cells are
// skipped.
func recipientsFromWorkbook(path string) ([]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer book.Close()

	for _, sheet := range book.GetSheetList() {
		rows, err := book.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading worksheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		col := -1
		for i, header := range rows[0] {
			if stringInList(strings.ToLower(strings.TrimSpace(header)), recipientHeaders) {
				col = i
				break
			}
		}
		if col < 0 {
			continue
		}

		var recipients []string
		for _, row := range rows[1:] {
			if col >= len(row) {
				continue
			}
			if value := strings.TrimSpace(row[col]); value != "" {
				recipients = append(recipients, value)
			}
		}
		if len(recipients) == 0 {
			return nil, errNoRecipients
		}
		return recipients, nil
	}

	return nil, errNoRecipientColumn
}
