package catalog

import "github.com/jpretorius/email-gateway/internal/model"

// organizations is the static registry of affiliated entities. Sender
// addresses here form the gateway's allow-list; anything else is
// rejected before network activity.
var organizations = map[model.Organization]model.OrganizationConfig{
	model.OrgFreeSA: {
		Name:        model.OrgFreeSA,
		FullName:    "Foundation for Rights of Expression and Equality NPC",
		SenderEmail: "memberships@freesa.org.za",
		Color:       "#f97316",
		ColorDark:   "#ea580c",
		Agents: []string{
			"Cindy Cloete",
			"Irene Rossouw",
			"Juan Pretorius",
			"Nadine Esterhuysen",
			"Pierre Farrell",
			"Santamari Barker",
			"Shireen Bester",
			"Vanessa Fourie",
			"Wynand Kapp",
		},
		ShowBankDetails: true,
		HasAttachment:   false,
	},
	model.OrgTLUSA: {
		Name:        model.OrgTLUSA,
		FullName:    "TLU Suid Afrika - Die Vesting van die Kommersiële Boer",
		SenderEmail: "info@tlu.co.za",
		Color:       "#22c55e",
		ColorDark:   "#16a34a",
		Agents: []string{
			"Cindy Cloete",
			"Cobus Esterhuizen",
			"Geneveve Webster",
			"Irene Brummer",
			"Irene Rossouw",
			"Juan Pretorius",
			"Lee-Anne Brummer",
			"Leodette Maritz",
			"Martin Van Der Walt",
			"Martin Webster",
			"Nadine Esterhuysen",
			"Pierre Farrell",
			"Robert Eglington",
			"Sammy Farrell",
			"Santamari Barker",
			"Shireen Bester",
			"Stephanie Wheeler",
			"Wynand Kapp",
			"Zane Erasmus",
		},
		ShowBankDetails: true,
		HasAttachment:   false,
	},
	model.OrgFirearmsGuardian: {
		Name:        model.OrgFirearmsGuardian,
		FullName:    "Firearms Guardian Legal & Liability Insurance",
		SenderEmail: "benefits@firearmsguardian.co.za",
		Color:       "#dc2626",
		ColorDark:   "#b91c1c",
		Agents: []string{
			"Cindy Cloete",
			"Irene Rossouw",
			"Jurie Steyn",
			"Leodette Maritz",
			"Michael Mostert",
			"Nadine Esterhuysen",
			"Robert Eglington",
			"Shireen Bester",
			"Stephanie Wheeler",
			"Vanessa Fourie",
			"Wynand Boshoff",
		},
		ShowBankDetails: false,
		HasAttachment:   true,
	},
	model.OrgCivilSocietySA: {
		Name:        model.OrgCivilSocietySA,
		FullName:    "Civil Society South Africa",
		SenderEmail: "contributors@civilsocietysa.co.za",
		Color:       "#2563eb",
		ColorDark:   "#1d4ed8",
		Agents: []string{
			"Cindy Cloete",
			"Irene Rossouw",
			"Juan Pretorius",
			"Nadine Esterhuysen",
			"Pierre Farrell",
			"Santamari Barker",
			"Shireen Bester",
			"Vanessa Fourie",
			"Wynand Kapp",
		},
		ShowBankDetails: true,
		HasAttachment:   false,
	},
}
