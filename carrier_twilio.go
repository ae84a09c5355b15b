package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioCarrier implements Carrier for Twilio.
type TwilioCarrier struct {
	client *twilio.RestClient
	logger *logrus.Logger
}

func NewTwilioCarrier(logger *logrus.Logger) *TwilioCarrier {
	return &TwilioCarrier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: os.Getenv("TWILIO_ACCOUNT_SID"),
			Password: os.Getenv("TWILIO_AUTH_TOKEN"),
		}),
		logger: logger,
	}
}

func (c *TwilioCarrier) Name() string { return "twilio" }

func (c *TwilioCarrier) SendSMS(sms *SMS) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(sms.To)
	params.SetFrom(sms.From)
	params.SetBody(sms.Text)

	if _, err := c.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("error sending SMS via Twilio: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"carrier": c.Name(),
		"to":      sms.To,
	}).Info("SMS sent")
	return nil
}
