package model

// EmailTemplate is the static content skeleton for one (organization,
// language) pair. Greeting contains a {{clientName}} placeholder, body
// contains {{agentName}} and {{clientName}}.
type EmailTemplate struct {
	Subject     string
	Greeting    string
	Body        string
	Sections    []Section
	Buttons     []Button
	BankDetails *BankDetails
	Footer      Footer
}

// Section is a block of template content with an optional heading.
// Content is raw text; whether it renders as a list or prose is decided
// at render time from the content itself.
type Section struct {
	Heading string
	Content string
}

// Button is a call-to-action link.
type Button struct {
	Text string
	Link string
}

// BankDetails is the optional payment block shown by organizations that
// collect contributions by EFT.
type BankDetails struct {
	Title     string
	Rows      []BankRow
	ProofNote string
}

type BankRow struct {
	Label string
	Value string
}

type Footer struct {
	Closing    string
	Department string
}
