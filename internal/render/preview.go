// Package render turns a template plus caller variables into the two
// outputs the composer needs: a structured preview for on-screen display
// and a self-contained HTML document for the email provider. Both are
// built from the same view so their visible content cannot drift.
package render

import (
	"github.com/jpretorius/email-gateway/internal/model"
	"github.com/jpretorius/email-gateway/internal/pdf"
)

// Request bundles a resolved template and organization with the
// caller-supplied variables for one render. Ephemeral.
type Request struct {
	Org      model.OrganizationConfig
	Template model.EmailTemplate
	Vars     Vars
}

// Preview is the renderer-agnostic view of one composed email. The UI
// displays it directly; the HTML document is produced from the same
// structure with send-context fallbacks.
type Preview struct {
	Color      string
	FullName   string
	Subject    string
	Greeting   string
	Body       string
	Sections   []PreviewSection
	Buttons    []model.Button
	Bank       *model.BankDetails
	Attachment string // attached PDF filename, empty when none
	Closing    string
	Department string
}

// PreviewSection is one classified content block.
type PreviewSection struct {
	Heading string
	Mode    Mode
	Items   []string // list items when Mode == List
	Text    string   // interpolation-free raw content when Mode == Prose
}

func (s PreviewSection) IsList() bool { return s.Mode == List }

// BuildPreview renders the on-screen representation, substituting
// bracketed preview fallbacks for empty variables.
func BuildPreview(req Request) Preview {
	return buildView(req, PreviewClientFallback, PreviewAgentFallback)
}

func buildView(req Request, clientFallback, agentFallback string) Preview {
	vars := req.Vars.resolve(clientFallback, agentFallback)

	p := Preview{
		Color:      req.Org.Color,
		FullName:   req.Org.FullName,
		Subject:    req.Template.Subject,
		Greeting:   Interpolate(req.Template.Greeting, vars),
		Body:       Interpolate(req.Template.Body, vars),
		Buttons:    req.Template.Buttons,
		Bank:       req.Template.BankDetails,
		Closing:    req.Template.Footer.Closing,
		Department: req.Template.Footer.Department,
	}
	if req.Org.HasAttachment {
		p.Attachment = pdf.FormFilename
	}
	for _, s := range req.Template.Sections {
		ps := PreviewSection{Heading: s.Heading, Mode: Classify(s.Content)}
		if ps.Mode == List {
			ps.Items = Lines(s.Content)
		} else {
			ps.Text = s.Content
		}
		p.Sections = append(p.Sections, ps)
	}
	return p
}

// Strings returns the visible text of the email in document order:
// everything that appears in both the preview and the HTML output. The
// attachment notice is preview-only and excluded.
func (p Preview) Strings() []string {
	out := []string{p.Greeting, p.Body}
	for _, s := range p.Sections {
		if s.Heading != "" {
			out = append(out, s.Heading)
		}
		if s.Mode == List {
			out = append(out, s.Items...)
		} else {
			out = append(out, s.Text)
		}
	}
	for _, b := range p.Buttons {
		out = append(out, b.Text)
	}
	if p.Bank != nil {
		out = append(out, p.Bank.Title)
		for _, r := range p.Bank.Rows {
			out = append(out, r.Label+": "+r.Value)
		}
		if p.Bank.ProofNote != "" {
			out = append(out, p.Bank.ProofNote)
		}
	}
	out = append(out, p.Closing, p.Department)
	return out
}
