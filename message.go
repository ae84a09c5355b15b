package main

import (
	"encoding/hex"

	"smsblast/gsm7"
)

// messageReport is the outcome of examining one message for sending.
// The analysis is purely advisory; the message itself is never
// altered, and delivery always transmits the original text.
type messageReport struct {
	Sendable bool
	Encoding gsm7.Encoding
	Segments int
	Omitted  []rune
}

// evaluateMessage examines the message and decides whether and how it
// could be sent. A message whose runes all fit the GSM 03.38 default
// alphabet goes out GSM-7 encoded; anything else falls back to UCS-2.
// In dry-run mode, cost-saving recommendations are logged as well.
func (app *App) evaluateMessage(message string) *messageReport {
	encoded, omitted := gsm7.Encode(message)
	app.logger.WithField("gsm7_hex", hex.EncodeToString(encoded)).Debug("GSM-7 encoded message")

	count := len([]rune(message))
	gsmSegs, gsmOK := gsm7.Segments(count, gsm7.GSM7)
	ucsSegs, ucsOK := gsm7.Segments(count, gsm7.UCS2)

	report := &messageReport{Omitted: omitted}

	if len(omitted) > 0 {
		if !ucsOK {
			app.logger.Error("this message is too long to be sent via SMS in UCS-2 format")
			if app.dryRun && gsmOK {
				app.logger.Warnf("however, if the symbols %q were replaced with GSM-7 friendly symbols, it could be sent as a GSM-7 message",
					string(omitted))
			}
			return report
		}
		if app.dryRun && gsmOK && gsmSegs < ucsSegs {
			savings := float64(ucsSegs-gsmSegs) / float64(ucsSegs)
			app.logger.Warnf("suggestion: if the symbols %q are replaced with GSM-7 encodable symbols, the message would be sent GSM-7 encoded and would cost ~%.0f%% less to send",
				string(omitted), savings*100.0)
		}
		report.Encoding = gsm7.UCS2
		report.Segments = ucsSegs
	} else {
		if !gsmOK {
			app.logger.Error("this message is too long to be sent via SMS even in GSM-7 format")
			return report
		}
		report.Encoding = gsm7.GSM7
		report.Segments = gsmSegs
	}

	report.Sendable = true
	if report.Segments > 1 {
		app.logger.Infof("this message will be sent as %d concatenated %s encoded messages",
			report.Segments, report.Encoding)
	} else {
		app.logger.Infof("this message will be sent as a single %s encoded message", report.Encoding)
	}
	return report
}
