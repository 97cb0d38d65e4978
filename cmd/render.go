package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpretorius/email-gateway/internal/catalog"
	"github.com/jpretorius/email-gateway/internal/model"
	"github.com/jpretorius/email-gateway/internal/pdf"
	"github.com/jpretorius/email-gateway/internal/render"
)

var (
	renderDept   string
	renderLang   string
	renderClient string
	renderAgent  string
	renderOut    string
)

// renderCmd writes the exact HTML (and PDF, where the organization
// requires one) that a send would carry, for offline inspection without
// a provider key.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an email to disk without sending",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.Validate(); err != nil {
			return err
		}

		org, ok := model.ParseOrganization(renderDept)
		if !ok {
			return fmt.Errorf("unknown department %q", renderDept)
		}
		lang, ok := model.ParseLanguage(renderLang)
		if !ok {
			return fmt.Errorf("unknown language %q", renderLang)
		}

		cfg, _ := catalog.Organization(org)
		tmpl, _ := catalog.Template(org, lang)

		html, err := render.Document(render.Request{
			Org:      cfg,
			Template: tmpl,
			Vars:     render.Vars{ClientName: renderClient, AgentName: renderAgent},
		})
		if err != nil {
			return fmt.Errorf("render html: %w", err)
		}

		if err := os.MkdirAll(renderOut, 0o755); err != nil {
			return err
		}

		base := strings.ToLower(strings.ReplaceAll(org.String(), " ", "_"))
		htmlPath := filepath.Join(renderOut, base+"_"+lang.String()+".html")
		if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
			return err
		}
		fmt.Println(htmlPath)

		if cfg.HasAttachment {
			doc, err := pdf.Form()
			if err != nil {
				return fmt.Errorf("render pdf: %w", err)
			}
			pdfPath := filepath.Join(renderOut, pdf.FormFilename)
			if err := os.WriteFile(pdfPath, doc, 0o644); err != nil {
				return err
			}
			fmt.Println(pdfPath)
		}

		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderDept, "department", "", "organization name, e.g. \"Free SA\"")
	renderCmd.Flags().StringVar(&renderLang, "language", "en", "template language: en | af")
	renderCmd.Flags().StringVar(&renderClient, "client", "", "client display name")
	renderCmd.Flags().StringVar(&renderAgent, "agent", "", "agent display name")
	renderCmd.Flags().StringVar(&renderOut, "out", "./out", "output directory")
	_ = renderCmd.MarkFlagRequired("department")
}
