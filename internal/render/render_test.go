package render

import (
	stdhtml "html"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpretorius/email-gateway/internal/catalog"
	"github.com/jpretorius/email-gateway/internal/model"
	"github.com/jpretorius/email-gateway/internal/pdf"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// visibleText reduces an HTML document to its whitespace-collapsed
// visible text so preview and document content can be compared.
func visibleText(doc string) string {
	s := strings.ReplaceAll(doc, "<br>", "\n")
	s = tagRe.ReplaceAllString(s, " ")
	s = stdhtml.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func catalogRequest(t *testing.T, org model.Organization, lang model.Language, vars Vars) Request {
	t.Helper()
	cfg, ok := catalog.Organization(org)
	require.True(t, ok)
	tmpl, ok := catalog.Template(org, lang)
	require.True(t, ok)
	return Request{Org: cfg, Template: tmpl, Vars: vars}
}

func TestPreviewAndDocumentCarrySameText(t *testing.T) {
	vars := Vars{ClientName: "Anna", AgentName: "Jurie Steyn"}
	for _, org := range catalog.Organizations() {
		for _, lang := range model.Languages() {
			t.Run(org.Name.String()+"/"+lang.String(), func(t *testing.T) {
				req := catalogRequest(t, org.Name, lang, vars)

				doc, err := Document(req)
				require.NoError(t, err)
				text := visibleText(doc)

				// With all variables supplied, the preview and the
				// document resolve identically; every visible preview
				// string must appear in the document, in order.
				idx := 0
				for _, want := range BuildPreview(req).Strings() {
					want = collapse(want)
					if want == "" {
						continue
					}
					pos := strings.Index(text[idx:], want)
					require.GreaterOrEqual(t, pos, 0, "missing or out of order: %q", want)
					idx += pos + len(want)
				}
			})
		}
	}
}

func TestPreviewFallbacks(t *testing.T) {
	req := catalogRequest(t, model.OrgFreeSA, model.LangEN, Vars{})

	p := BuildPreview(req)
	assert.Contains(t, p.Greeting, "[client name]")
	assert.NotContains(t, p.Greeting, "{{")

	doc, err := Document(req)
	require.NoError(t, err)
	assert.Contains(t, doc, "[Client]")
	assert.NotContains(t, doc, "{{clientName}}")
	assert.NotContains(t, doc, "[client name]")
}

func TestDocumentGreetingInterpolated(t *testing.T) {
	req := catalogRequest(t, model.OrgFirearmsGuardian, model.LangAF,
		Vars{ClientName: "Anna", AgentName: "Jurie Steyn"})

	p := BuildPreview(req)
	assert.Equal(t, "Hallo Anna,", p.Greeting)

	doc, err := Document(req)
	require.NoError(t, err)
	assert.Contains(t, doc, "Hallo Anna,")
}

func TestAttachmentNoticeIsPreviewOnly(t *testing.T) {
	fg := catalogRequest(t, model.OrgFirearmsGuardian, model.LangEN, Vars{})
	free := catalogRequest(t, model.OrgFreeSA, model.LangEN, Vars{})

	assert.Equal(t, pdf.FormFilename, BuildPreview(fg).Attachment)
	assert.Empty(t, BuildPreview(free).Attachment)

	doc, err := Document(fg)
	require.NoError(t, err)
	assert.NotContains(t, doc, pdf.FormFilename)
}

func TestDocumentStructure(t *testing.T) {
	org := model.OrganizationConfig{
		Name:     "Free SA",
		FullName: "Free SA Test",
		Color:    "#f97316",
	}
	tmpl := model.EmailTemplate{
		Subject:  "Subject",
		Greeting: "Hello {{clientName}},",
		Body:     "First paragraph.\n\nSecond paragraph.",
		Sections: []model.Section{
			{Heading: "Options", Content: "Option A\nOption B"},
			{Heading: "", Content: "A continuation sentence. With prose."},
		},
		Buttons: []model.Button{{Text: "Join now", Link: "https://example.org/join"}},
		BankDetails: &model.BankDetails{
			Title:     "Banking Details",
			Rows:      []model.BankRow{{Label: "Bank", Value: "FNB"}},
			ProofNote: "Please send proof of payment.",
		},
		Footer: model.Footer{Closing: "Kind regards,", Department: "Memberships Team"},
	}

	doc, err := Document(Request{Org: org, Template: tmpl, Vars: Vars{ClientName: "Anna"}})
	require.NoError(t, err)

	assert.Contains(t, doc, "Hello Anna,")
	assert.Contains(t, doc, "First paragraph.<br><br>Second paragraph.")
	assert.Contains(t, doc, ">Options</h3>")
	assert.Equal(t, 2, strings.Count(doc, "&#8226;"), "one bullet per list item")
	assert.Contains(t, doc, `<a href="https://example.org/join" target="_blank"`)
	assert.Contains(t, doc, ">Banking Details</h3>")
	assert.Contains(t, doc, "Please send proof of payment.")
	assert.Contains(t, doc, `<strong style="color:#f97316;">Memberships Team</strong>`)
	assert.Contains(t, doc, "Sent by Free SA Test")
	assert.Contains(t, doc, "fonts.googleapis.com/css2?family=Outfit")

	// The spacer row replaces the heading cell, it never renders an
	// empty h3.
	assert.NotContains(t, doc, "></h3>")
}

func TestDocumentEscapesUserInput(t *testing.T) {
	req := catalogRequest(t, model.OrgTLUSA, model.LangEN,
		Vars{ClientName: "<script>alert(1)</script>"})
	doc, err := Document(req)
	require.NoError(t, err)
	assert.NotContains(t, doc, "<script>alert(1)</script>")
}

func TestSectionClassificationInPreview(t *testing.T) {
	req := Request{
		Org: model.OrganizationConfig{Name: "Free SA", Color: "#fff"},
		Template: model.EmailTemplate{
			Subject:  "s",
			Greeting: "g",
			Body:     "b",
			Sections: []model.Section{
				{Heading: "List", Content: "One\nTwo\nThree"},
				{Heading: "Prose", Content: "A sentence. Another one."},
			},
			Footer: model.Footer{Closing: "c", Department: "d"},
		},
	}
	p := BuildPreview(req)
	require.Len(t, p.Sections, 2)
	assert.True(t, p.Sections[0].IsList())
	assert.Equal(t, []string{"One", "Two", "Three"}, p.Sections[0].Items)
	assert.False(t, p.Sections[1].IsList())
	assert.Equal(t, "A sentence. Another one.", p.Sections[1].Text)
}
