package main

import (
	"github.com/sirupsen/logrus"
)

// App wires the message policy engine, the recipient pipeline and the
// carrier together for one invocation.
type App struct {
	logger  *logrus.Entry
	carrier Carrier
	sender  string
	dryRun  bool
}

// Run performs one broadcast: message analysis, recipient resolution
// and normalization, then per-recipient delivery. Validation failures
// are batch-wide and fail closed; delivery failures are isolated per
// recipient. Every handled failure path ends in a diagnostic and
// "nothing to do" rather than an abort.
func (app *App) Run(message string, source recipientSource) {
	app.logger.Infof("using a sender value of %q; use the -s option to modify", app.sender)

	report := app.evaluateMessage(message)

	raw, err := source.resolve()
	if err != nil {
		app.logger.WithError(err).Error("could not get the recipient telephone numbers")
		app.logger.Info("there is nothing to do")
		return
	}

	recipients, err := app.cleanPhoneNumbers(raw)
	if err != nil {
		app.logger.WithError(err).Error("please see the output log to identify the problematic entries, correct them, and try again")
		app.logger.Info("there is nothing to do")
		return
	}

	if !report.Sendable || len(recipients) == 0 {
		app.logger.Info("there is nothing to do")
		return
	}

	app.sendAll(message, recipients)
}

// sendAll delivers the message to each recipient in turn. One
// recipient's failure does not stop the rest of the batch.
func (app *App) sendAll(message string, recipients []string) {
	for _, recipient := range recipients {
		if app.dryRun {
			app.logger.Infof("DRY RUN: pretend a message was sent to %s", recipient)
			continue
		}
		sms := &SMS{From: app.sender, To: recipient, Text: message}
		if err := app.carrier.SendSMS(sms); err != nil {
			app.logger.WithError(err).Errorf("message not sent to %s", recipient)
		}
	}
}
