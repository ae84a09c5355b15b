package main

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// errUnparsableRecipients means at least one recipient number failed
// validation; the whole batch is rejected.
var errUnparsableRecipients = errors.New("one or more of the recipient telephone numbers were not parsable")

// bidiOverrides strips the bidirectional override/pop controls that
// show up around numbers pasted from spreadsheets.
var bidiOverrides = strings.NewReplacer("\u202d", "", "\u202e", "", "\u202c", "")

// cleanPhoneNumbers normalizes raw phone numbers into E.164 format.
// Every entry must parse and validate; each failure is reported
// individually, and a single failure discards the whole batch. The
// result is de-duplicated, keeping first-appearance order.
func (app *App) cleanPhoneNumbers(raw []string) ([]string, error) {
	var cleaned []string
	seen := make(map[string]bool)
	failed := false

	for _, entry := range raw {
		num := bidiOverrides.Replace(entry)
		parsed, err := phonenumbers.Parse(num, "")
		if err != nil {
			app.logger.Errorf("the telephone number provided: %q raised an unexpected error while attempting to parse it; please ensure this entry is a valid international (E.164) formattable telephone number and try again",
				entry)
			failed = true
			continue
		}
		if !phonenumbers.IsValidNumber(parsed) {
			app.logger.Errorf("the telephone number provided: %q does not appear to be a valid telephone number; please correct its format to be in the international (E.164) format (e.g. +12125551212 or +442012341234) and try again",
				entry)
			failed = true
			continue
		}
		e164 := phonenumbers.Format(parsed, phonenumbers.E164)
		if !seen[e164] {
			seen[e164] = true
			cleaned = append(cleaned, e164)
		}
	}

	if failed {
		return nil, errUnparsableRecipients
	}
	return cleaned, nil
}
