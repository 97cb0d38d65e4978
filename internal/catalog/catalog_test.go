package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpretorius/email-gateway/internal/model"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestOrganizations(t *testing.T) {
	orgs := Organizations()
	require.Len(t, orgs, 4)

	// Stable alphabetical order.
	for i := 1; i < len(orgs); i++ {
		assert.Less(t, orgs[i-1].Name, orgs[i].Name)
	}

	seen := map[string]bool{}
	for _, org := range orgs {
		assert.NotEmpty(t, org.FullName, org.Name)
		assert.NotEmpty(t, org.SenderEmail, org.Name)
		assert.NotEmpty(t, org.Color, org.Name)
		assert.NotEmpty(t, org.Agents, org.Name)
		assert.False(t, seen[org.SenderEmail], "duplicate sender %s", org.SenderEmail)
		seen[org.SenderEmail] = true
	}
}

func TestOrganizationLookup(t *testing.T) {
	cfg, ok := Organization(model.OrgFirearmsGuardian)
	require.True(t, ok)
	assert.Equal(t, "benefits@firearmsguardian.co.za", cfg.SenderEmail)
	assert.True(t, cfg.HasAttachment)
	assert.False(t, cfg.ShowBankDetails)

	_, ok = Organization(model.Organization("Unknown Org"))
	assert.False(t, ok)
}

func TestTemplateLookup(t *testing.T) {
	for _, org := range Organizations() {
		for _, lang := range model.Languages() {
			tmpl, ok := Template(org.Name, lang)
			require.True(t, ok, "%s/%s", org.Name, lang)
			assert.NotEmpty(t, tmpl.Subject)
			assert.NotEmpty(t, tmpl.Greeting)
			assert.NotEmpty(t, tmpl.Body)
		}
	}

	_, ok := Template(model.Organization("Unknown Org"), model.LangEN)
	assert.False(t, ok)
}

// The organization that ships an application form never carries a
// banking block: its onboarding runs through the form instead.
func TestAttachmentOrganizationHasNoBankDetails(t *testing.T) {
	for _, org := range Organizations() {
		for _, lang := range model.Languages() {
			tmpl, ok := Template(org.Name, lang)
			require.True(t, ok)
			if org.HasAttachment {
				assert.Nil(t, tmpl.BankDetails, "%s/%s", org.Name, lang)
			}
		}
	}

	for _, key := range []model.Organization{model.OrgFreeSA, model.OrgTLUSA} {
		for _, lang := range model.Languages() {
			tmpl, _ := Template(key, lang)
			require.NotNil(t, tmpl.BankDetails, "%s/%s", key, lang)
			assert.NotEmpty(t, tmpl.BankDetails.Rows)
		}
	}
}
