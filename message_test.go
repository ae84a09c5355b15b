package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"smsblast/gsm7"
)

func TestEvaluateMessagePlainASCII(t *testing.T) {
	app, hook := newTestApp(true, &mockCarrier{})

	report := app.evaluateMessage("Hello")

	assert.True(t, report.Sendable)
	assert.Equal(t, gsm7.GSM7, report.Encoding)
	assert.Equal(t, 1, report.Segments)
	assert.Empty(t, report.Omitted)
	assert.NotEmpty(t, logLines(hook, "single GSM-7 encoded message"))
}

func TestEvaluateMessageEmpty(t *testing.T) {
	app, _ := newTestApp(true, &mockCarrier{})

	report := app.evaluateMessage("")

	assert.True(t, report.Sendable)
	assert.Equal(t, gsm7.GSM7, report.Encoding)
	assert.Equal(t, 1, report.Segments)
}

func TestEvaluateMessageShortEuroNoSuggestion(t *testing.T) {
	app, hook := newTestApp(true, &mockCarrier{})

	report := app.evaluateMessage("€")

	assert.True(t, report.Sendable)
	assert.Equal(t, gsm7.UCS2, report.Encoding)
	assert.Equal(t, 1, report.Segments)
	assert.Equal(t, []rune{'€'}, report.Omitted)
	// both encodings need one segment, so no saving to suggest
	assert.Empty(t, logLines(hook, "suggestion"))
}

func TestEvaluateMessageTwoGSM7Segments(t *testing.T) {
	app, hook := newTestApp(true, &mockCarrier{})

	report := app.evaluateMessage(strings.Repeat("a", 170))

	assert.True(t, report.Sendable)
	assert.Equal(t, gsm7.GSM7, report.Encoding)
	assert.Equal(t, 2, report.Segments)
	assert.NotEmpty(t, logLines(hook, "2 concatenated GSM-7 encoded messages"))
}

func TestEvaluateMessageSuggestsGSM7Saving(t *testing.T) {
	app, hook := newTestApp(true, &mockCarrier{})

	// 200 runes: 3 segments as UCS-2, 2 as GSM-7 -> ~33% saving
	report := app.evaluateMessage(strings.Repeat("a", 199) + "€")

	assert.True(t, report.Sendable)
	assert.Equal(t, gsm7.UCS2, report.Encoding)
	assert.Equal(t, 3, report.Segments)
	suggestions := logLines(hook, "suggestion")
	assert.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "33%")
}

func TestEvaluateMessageNoSuggestionOutsideDryRun(t *testing.T) {
	app, hook := newTestApp(false, &mockCarrier{})

	report := app.evaluateMessage(strings.Repeat("a", 199) + "€")

	assert.True(t, report.Sendable)
	assert.Empty(t, logLines(hook, "suggestion"))
}

func TestEvaluateMessageTooLongForUCS2(t *testing.T) {
	app, hook := newTestApp(true, &mockCarrier{})

	// 400 runes: beyond the 335-rune UCS-2 ceiling, within GSM-7's 459
	report := app.evaluateMessage(strings.Repeat("a", 399) + "€")

	assert.False(t, report.Sendable)
	assert.NotEmpty(t, logLines(hook, "too long to be sent via SMS in UCS-2 format"))
	assert.NotEmpty(t, logLines(hook, "GSM-7 friendly symbols"))
}

func TestEvaluateMessageTooLongForUCS2NoAdviceOutsideDryRun(t *testing.T) {
	app, hook := newTestApp(false, &mockCarrier{})

	report := app.evaluateMessage(strings.Repeat("a", 399) + "€")

	assert.False(t, report.Sendable)
	assert.Empty(t, logLines(hook, "GSM-7 friendly symbols"))
}

func TestEvaluateMessageTooLongForGSM7(t *testing.T) {
	app, hook := newTestApp(true, &mockCarrier{})

	report := app.evaluateMessage(strings.Repeat("a", 800))

	assert.False(t, report.Sendable)
	assert.NotEmpty(t, logLines(hook, "even in GSM-7 format"))
}
