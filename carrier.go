package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Carrier is one outbound SMS delivery backend.
type Carrier interface {
	SendSMS(sms *SMS) error
	Name() string
}

// loadCarrier picks the delivery backend from the SMS_CARRIER
// environment variable. Mailjet is the default.
func loadCarrier(logger *logrus.Logger) (Carrier, error) {
	name := strings.ToLower(os.Getenv("SMS_CARRIER"))
	switch name {
	case "", "mailjet":
		return NewMailjetCarrier(logger), nil
	case "twilio":
		return NewTwilioCarrier(logger), nil
	default:
		return nil, fmt.Errorf("unknown carrier type: %s", name)
	}
}
