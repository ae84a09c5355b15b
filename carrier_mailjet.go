package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

const mailjetAPIURL = "https://api.mailjet.com/v4/sms-send"

// MailjetCarrier implements Carrier for the Mailjet v4 sms-send API.
type MailjetCarrier struct {
	url    string
	token  string
	client *http.Client
	logger *logrus.Logger
}

func NewMailjetCarrier(logger *logrus.Logger) *MailjetCarrier {
	url := os.Getenv("MAILJET_API_URL")
	if url == "" {
		url = mailjetAPIURL
	}
	return &MailjetCarrier{
		url:    url,
		token:  os.Getenv("MAILJET_API_TOKEN"),
		client: &http.Client{},
		logger: logger,
	}
}

func (c *MailjetCarrier) Name() string { return "mailjet" }

type mailjetSMSRequest struct {
	From string `json:"From"`
	To   string `json:"To"`
	Text string `json:"Text"`
}

func (c *MailjetCarrier) SendSMS(sms *SMS) error {
	payload, err := json.Marshal(mailjetSMSRequest{From: sms.From, To: sms.To, Text: sms.Text})
	if err != nil {
		return fmt.Errorf("error marshaling json: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request to Mailjet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("an error (%d) occurred: %q", resp.StatusCode, body)
	}

	c.logger.WithFields(logrus.Fields{
		"carrier": c.Name(),
		"to":      sms.To,
	}).Info("SMS sent")
	return nil
}
