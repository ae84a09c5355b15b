package main

// SMS represents one outbound message handed to a carrier.
type SMS struct {
	From string
	To   string
	Text string
}

// recipientSource is where one run's raw recipients come from: numbers
// given directly on the command line, or a workbook to extract them
// from. At most one variant is populated; the flag surface enforces
// the exclusivity before the run starts.
type recipientSource struct {
	direct   []string
	workbook string
}

// resolve yields the raw recipient strings, in order.
func (s recipientSource) resolve() ([]string, error) {
	if s.workbook != "" {
		return recipientsFromWorkbook(s.workbook)
	}
	if len(s.direct) == 0 {
		return nil, errNoRecipients
	}
	return s.direct, nil
}
