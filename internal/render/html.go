package render

import (
	"html/template"
	"strings"
)

// Document renders the complete HTML email for provider delivery.
// Table-based layout with fully inlined styles: target mail clients do
// not reliably support linked stylesheets or class selectors. The only
// external reference is the web-font link in the head; no scripts.
func Document(req Request) (string, error) {
	v := buildView(req, SendClientFallback, SendAgentFallback)
	var sb strings.Builder
	if err := emailTmpl.Execute(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var emailTmpl = template.Must(template.New("email").Funcs(template.FuncMap{
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
}).Parse(emailDocument))

const emailDocument = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <link href="https://fonts.googleapis.com/css2?family=Outfit:wght@400;500;600;700&display=swap" rel="stylesheet">
</head>
<body style="margin:0;padding:0;background:#f4f5f7;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
  <table role="presentation" style="width:100%;border-collapse:collapse;">
    <tr><td align="center" style="padding:32px 16px;">
      <table role="presentation" style="width:100%;max-width:600px;border-collapse:collapse;">
        <tr><td style="background:{{.Color}};height:5px;border-radius:8px 8px 0 0;"></td></tr>
        <tr><td style="background:#ffffff;padding:36px 32px;border-radius:0 0 8px 8px;box-shadow:0 1px 4px rgba(0,0,0,0.06);">
          <table role="presentation" style="width:100%;border-collapse:collapse;">
            <tr><td style="padding:0 0 14px 0;">
              <h2 style="margin:0;font-size:18px;font-weight:600;color:#1f2937;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">{{.Greeting}}</h2>
            </td></tr>
            <tr><td style="padding:0 0 4px 0;font-size:14px;line-height:1.7;color:#374151;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
              {{nl2br .Body}}
            </td></tr>
{{- range .Sections}}
{{- if .Heading}}
            <tr><td style="padding:20px 0 6px 0;">
              <h3 style="margin:0;font-size:15px;font-weight:700;color:{{$.Color}};font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">{{.Heading}}</h3>
            </td></tr>
{{- else}}
            <tr><td style="padding:12px 0 0 0;"></td></tr>
{{- end}}
{{- if .IsList}}
{{- range .Items}}
            <tr><td style="padding:3px 0 3px 16px;font-size:14px;line-height:1.6;color:#374151;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
              <span style="color:{{$.Color}};font-weight:700;margin-right:8px;">&#8226;</span>{{.}}
            </td></tr>
{{- end}}
{{- else}}
            <tr><td style="padding:0 0 8px 0;font-size:14px;line-height:1.7;color:#374151;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
              {{nl2br .Text}}
            </td></tr>
{{- end}}
{{- end}}
            <tr><td style="padding:22px 0;">
{{- range .Buttons}}
              <a href="{{.Link}}" target="_blank" style="display:inline-block;background-color:{{$.Color}};color:#ffffff;padding:12px 28px;text-decoration:none;border-radius:6px;font-weight:700;font-size:14px;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;margin:4px 0;">{{.Text}}</a>
{{- end}}
            </td></tr>
{{- with .Bank}}
            <tr><td style="padding:24px 0 0 0;">
              <table style="width:100%;border-collapse:collapse;background:#f8f9fa;border-radius:8px;border:1px solid #eef0f2;">
                <tr><td style="padding:16px 20px 10px 20px;">
                  <h3 style="margin:0;font-size:14px;font-weight:700;color:#1f2937;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">{{.Title}}</h3>
                </td></tr>
{{- range .Rows}}
                <tr><td style="padding:3px 20px;font-size:13px;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
                  <span style="color:#6b7280;font-weight:600;display:inline-block;min-width:130px;">{{.Label}}:</span>
                  <span style="color:#1f2937;">{{.Value}}</span>
                </td></tr>
{{- end}}
                <tr><td style="padding:12px 20px 16px 20px;font-size:12px;color:#6b7280;font-style:italic;line-height:1.5;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
                  {{.ProofNote}}
                </td></tr>
              </table>
            </td></tr>
{{- end}}
            <tr><td style="padding:28px 0 0 0;border-top:1px solid #eef0f2;">
              <p style="margin:0;font-size:14px;color:#6b7280;line-height:1.6;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
                {{.Closing}}<br>
                <strong style="color:{{.Color}};">{{.Department}}</strong>
              </p>
            </td></tr>
          </table>
        </td></tr>
        <tr><td style="padding:14px 0;text-align:center;">
          <p style="margin:0;font-size:11px;color:#b0b5bf;font-family:'Outfit','Helvetica Neue',Helvetica,Arial,sans-serif;">
            Sent by {{.FullName}}
          </p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`
