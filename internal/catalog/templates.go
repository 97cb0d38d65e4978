package catalog

import "github.com/jpretorius/email-gateway/internal/model"

type templateKey struct {
	Org  model.Organization
	Lang model.Language
}

var templates = map[templateKey]model.EmailTemplate{
	{model.OrgFreeSA, model.LangEN}: {
		Subject:  "Free SA - Your Contribution Details",
		Greeting: "Hello {{clientName}},",
		Body: "Thank you for chatting with {{agentName}} from Free SA.\n\n" +
			"Free SA helps ordinary South Africans participate in lawmaking. We submit formal comments on proposed legislation, file PAIA applications, and run structured public participation campaigns. To date, we have processed over 2 million public comments on behalf of South Africans.\n\n" +
			"Your contribution funds:",
		Sections: []model.Section{
			{
				Heading: "",
				Content: "Formal submissions to Parliament on proposed laws\n" +
					"PAIA applications to access government information\n" +
					"Organised public comment campaigns on legislation\n" +
					"The Empower Education Fund and Young Leaders Awards",
			},
		},
		Buttons: []model.Button{
			{Text: "Make a Contribution", Link: "https://www.freesa.org.za/donate/"},
		},
		BankDetails: &model.BankDetails{
			Title: "Bank Details",
			Rows: []model.BankRow{
				{Label: "Bank", Value: "Capitec Business"},
				{Label: "Account Name", Value: "Foundation for Rights of Expression and Equality NPC"},
				{Label: "Account Number", Value: "1053038372"},
				{Label: "Branch Code", Value: "450105"},
			},
			ProofNote: "Please email your proof of payment to memberships@freesa.org.za so we can confirm your contribution.",
		},
		Footer: model.Footer{Closing: "Kind regards,", Department: "Free SA Team"},
	},
	{model.OrgFreeSA, model.LangAF}: {
		Subject:  "Free SA - Jou Bydrae-besonderhede",
		Greeting: "Hallo {{clientName}},",
		Body: "Dankie dat jy met {{agentName}} van Free SA gesels het.\n\n" +
			"Free SA help gewone Suid-Afrikaners om aan wetgewing deel te neem. Ons dien formele kommentaar in op voorgestelde wette, rig PAIA-aansoeke, en bestuur gestruktureerde openbare deelname-veldtogte. Tot op hede het ons meer as 2 miljoen openbare kommentare namens Suid-Afrikaners verwerk.\n\n" +
			"Jou bydrae befonds:",
		Sections: []model.Section{
			{
				Heading: "",
				Content: "Formele voorleggings aan die Parlement oor voorgestelde wette\n" +
					"PAIA-aansoeke om toegang tot regeringsinligting te kry\n" +
					"Georganiseerde openbare kommentaar-veldtogte\n" +
					"Die Empower Onderwysfonds en Jong Leiers-toekennings",
			},
		},
		Buttons: []model.Button{
			{Text: "Maak 'n Bydrae", Link: "https://www.freesa.org.za/donate/"},
		},
		BankDetails: &model.BankDetails{
			Title: "Bankbesonderhede",
			Rows: []model.BankRow{
				{Label: "Bank", Value: "Capitec Business"},
				{Label: "Rekeningnaam", Value: "Foundation for Rights of Expression and Equality NPC"},
				{Label: "Rekeningnommer", Value: "1053038372"},
				{Label: "Takkode", Value: "450105"},
			},
			ProofNote: "Stuur asseblief jou betalingsbewys na memberships@freesa.org.za sodat ons jou bydrae kan bevestig.",
		},
		Footer: model.Footer{Closing: "Vriendelike groete,", Department: "Free SA Span"},
	},
	{model.OrgTLUSA, model.LangEN}: {
		Subject:  "TLU SA - Membership Information",
		Greeting: "Good day {{clientName}},",
		Body: "Thank you for speaking with {{agentName}} from TLU SA.\n\n" +
			"TLU SA represents commercial farmers on property rights, labour affairs, security, and agricultural policy. We engage directly with government on legislation that affects farming operations and land ownership.",
		Sections: []model.Section{
			{
				Heading: "What You Get as a Member",
				Content: "Advisory Service for labour, legal, and compliance matters\n" +
					"Financial Wellbeing Desk and Business How-To support\n" +
					"Pitkos newsletter with policy updates and gazette announcements\n" +
					"Exclusive partner benefits through LWO and FINCO\n" +
					"Direct representation when legislation threatens your livelihood",
			},
		},
		Buttons: []model.Button{
			{Text: "Download Membership Form", Link: "https://www.tlu.co.za/wp-content/uploads/2025/05/Ondersteuner_2025.pdf"},
		},
		BankDetails: &model.BankDetails{
			Title: "Bank Details",
			Rows: []model.BankRow{
				{Label: "Bank", Value: "ABSA"},
				{Label: "Account Name", Value: "TLU Suid Afrika"},
				{Label: "Account Number", Value: "4050400686"},
				{Label: "Branch Code", Value: "632005"},
			},
			ProofNote: "Please email your completed form and proof of payment to info@tlu.co.za so we can activate your membership.",
		},
		Footer: model.Footer{Closing: "Warm regards,", Department: "TLU SA Membership Team"},
	},
	{model.OrgTLUSA, model.LangAF}: {
		Subject:  "TLU SA - Lidmaatskap-inligting",
		Greeting: "Goeie dag {{clientName}},",
		Body: "Dankie dat u met {{agentName}} van TLU SA gesels het.\n\n" +
			"TLU SA verteenwoordig kommersiële boere oor eiendomsregte, arbeidsake, sekuriteit en landboubeleid. Ons skakel direk met die regering oor wetgewing wat boerdery-bedrywighede en grondbesit raak.",
		Sections: []model.Section{
			{
				Heading: "Wat U Kry as Lid",
				Content: "Adviesdiens vir arbeids-, regs- en nakomingsake\n" +
					"Finansiele Welstandtoonbank en Besigheid Hoe-Om-ondersteuning\n" +
					"Pitkos-nuusbrief met beleidopdaterings en staatskoerant-aankondigings\n" +
					"Eksklusiewe vennootvoordele deur LWO en FINCO\n" +
					"Direkte verteenwoordiging wanneer wetgewing u bestaan bedreig",
			},
		},
		Buttons: []model.Button{
			{Text: "Laai Lidmaatskapvorm Af", Link: "https://www.tlu.co.za/wp-content/uploads/2025/05/Ondersteuner_2025.pdf"},
		},
		BankDetails: &model.BankDetails{
			Title: "Bankbesonderhede",
			Rows: []model.BankRow{
				{Label: "Bank", Value: "ABSA"},
				{Label: "Rekeningnaam", Value: "TLU Suid Afrika"},
				{Label: "Rekeningnommer", Value: "4050400686"},
				{Label: "Takkode", Value: "632005"},
			},
			ProofNote: "Stuur asseblief u voltooide vorm en betalingsbewys na info@tlu.co.za sodat ons u lidmaatskap kan aktiveer.",
		},
		Footer: model.Footer{Closing: "Vriendelike groete,", Department: "TLU SA Lidmaatskapspan"},
	},
	{model.OrgFirearmsGuardian, model.LangEN}: {
		Subject:  "Firearms Guardian - Your Application Details",
		Greeting: "Hello {{clientName}},",
		Body: "Thank you for speaking with {{agentName}} from Firearms Guardian.\n\n" +
			"Firearms Guardian provides legal protection and liability insurance for lawful firearm owners. If you face a legal situation involving your firearm, we connect you with qualified attorneys and cover your legal costs.",
		Sections: []model.Section{
			{
				Heading: "What You Get",
				Content: "24/7 access to qualified firearm attorneys\n" +
					"Legal assistance up to R300,000 per case\n" +
					"Liability cover up to R300,000 per year\n" +
					"Coverage for self-defence, accidental discharge, hunting incidents, and FCA prosecution\n" +
					"Coverage extends to your immediate family",
			},
			{
				Heading: "Pricing",
				Content: "Option 1: R135.00/month\n" +
					"Option 2: R245.00/month\n\n" +
					"Administered by Firearms Guardian (Pty) Ltd (FSP 47115). Underwritten by GENRIC Insurance Company Limited (FSP 43638).",
			},
		},
		Buttons: []model.Button{
			{Text: "Submit Your Application", Link: "https://firearmsguardian.co.za/join-now/"},
		},
		Footer: model.Footer{Closing: "Regards,", Department: "Firearms Guardian"},
	},
	{model.OrgFirearmsGuardian, model.LangAF}: {
		Subject:  "Firearms Guardian - Jou Aansoek-besonderhede",
		Greeting: "Hallo {{clientName}},",
		Body: "Dankie dat jy met {{agentName}} van Firearms Guardian gesels het.\n\n" +
			"Firearms Guardian bied regsbeskerming en aanspreeklikheidsdekking vir wettige vuurwapenaars. As jy 'n regskwessie het wat jou vuurwapen betrek, skakel ons jou met gekwalifiseerde prokureurs en dek ons jou regskoste.",
		Sections: []model.Section{
			{
				Heading: "Wat Jy Kry",
				Content: "24/7 toegang tot gekwalifiseerde vuurwapenprokureurs\n" +
					"Regsbystand tot R300 000 per saak\n" +
					"Aanspreeklikheidsdekking tot R300 000 per jaar\n" +
					"Dekking vir selfverdediging, toevallige ontlading, jagvoorvalle en Vuurwapenbeherwet-vervolging\n" +
					"Dekking sluit jou onmiddellike gesin in",
			},
			{
				Heading: "Pryse",
				Content: "Opsie 1: R135.00/maand\n" +
					"Opsie 2: R245.00/maand\n\n" +
					"Geadministreer deur Firearms Guardian (Edms) Bpk (FSP 47115). Onderskryf deur GENRIC Insurance Company Limited (FSP 43638).",
			},
		},
		Buttons: []model.Button{
			{Text: "Dien Jou Aansoek In", Link: "https://firearmsguardian.co.za/join-now/"},
		},
		Footer: model.Footer{Closing: "Groete,", Department: "Firearms Guardian"},
	},
	{model.OrgCivilSocietySA, model.LangEN}: {
		Subject:  "Civil Society SA - How to Get Involved",
		Greeting: "Hello {{clientName}},",
		Body: "Thank you for chatting with {{agentName}} from Civil Society South Africa.\n\n" +
			"Civil Society SA runs formal petition campaigns and submits legal arguments to Parliament on legislation that affects public safety. We focus on three active campaigns:",
		Sections: []model.Section{
			{
				Heading: "Current Campaigns",
				Content: "Legal Firearms Save Lives - opposing the removal of self-defence as a valid reason to own a firearm\n" +
					"Safety Tax Credits - motivating for private security costs to be tax deductible\n" +
					"Protect Those Who Protect Us - opposing PSIRA regulations that would restrict private security equipment",
			},
			{
				Heading: "What Your Contribution Funds",
				Content: "Legal research for formal parliamentary submissions\n" +
					"PAIA applications to access government records\n" +
					"Organised petition campaigns with verified signatures",
			},
		},
		Buttons: []model.Button{
			{Text: "Sign Our Petitions", Link: "https://civilsocietysa.co.za/#campaigns"},
		},
		Footer: model.Footer{Closing: "Regards,", Department: "Civil Society South Africa"},
	},
	{model.OrgCivilSocietySA, model.LangAF}: {
		Subject:  "Civil Society SA - Hoe Om Betrokke te Raak",
		Greeting: "Hallo {{clientName}},",
		Body: "Dankie dat jy met {{agentName}} van Civil Society South Africa gesels het.\n\n" +
			"Civil Society SA bestuur formele petisie-veldtogte en dien regsargumente by die Parlement in oor wetgewing wat openbare veiligheid raak. Ons fokus op drie aktiewe veldtogte:",
		Sections: []model.Section{
			{
				Heading: "Huidige Veldtogte",
				Content: "Wettige Vuurwapens Red Lewens - teen die verwydering van selfverdediging as rede om 'n vuurwapen te besit\n" +
					"Veiligheids-belastingkrediet - dat privaat sekuriteitskoste belastingaftrekbaar moet wees\n" +
					"Beskerm Die Wat Ons Beskerm - teen PSIRA-regulasies wat privaat sekuriteit se toerusting wil beperk",
			},
			{
				Heading: "Wat Jou Bydrae Befonds",
				Content: "Regsnavorsing vir formele parlementere voorleggings\n" +
					"PAIA-aansoeke om toegang tot regeringsrekords te kry\n" +
					"Georganiseerde petisie-veldtogte met geverifieerde handtekeninge",
			},
		},
		Buttons: []model.Button{
			{Text: "Teken Ons Petisies", Link: "https://civilsocietysa.co.za/#campaigns"},
		},
		Footer: model.Footer{Closing: "Groete,", Department: "Civil Society South Africa"},
	},
}
