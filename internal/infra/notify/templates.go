package notify

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

const verificationText = `Hi {{if .Username}}{{.Username}}{{else}}there{{end}},

Your AirEase verification code is: {{.Code}}

The code expires in {{.ExpiresInMinutes}} minutes.
If you did not sign up for AirEase, you can ignore this email.
`

const verificationHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Verify your email</title></head>
<body style="background:#f5f7fb;font-family:Arial,Helvetica,sans-serif;color:#222;">
<div style="max-width:560px;margin:20px auto;background:#fff;border:1px solid #e6eef6;padding:24px;border-radius:8px;">
  <h2>Welcome to AirEase</h2>
  <p>Hi {{if .Username}}{{.Username}}{{else}}there{{end}},</p>
  <p>Your verification code is:</p>
  <p style="font-size:32px;letter-spacing:8px;font-weight:bold;">{{.Code}}</p>
  <p>The code expires in {{.ExpiresInMinutes}} minutes.</p>
  <p style="color:#777;">If you did not sign up for AirEase, you can ignore this email.</p>
</div>
</body>
</html>`

const reportText = `New feedback report

ID:        {{.ID}}
From:      {{.UserEmail}}
Category:  {{.CategoryLabel}}
Flight:    {{if .FlightID}}{{deref .FlightID}}{{else}}-{{end}}
Submitted: {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}

{{.Content}}
`

const reportHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>New feedback report</title></head>
<body style="font-family:Arial,Helvetica,sans-serif;color:#222;">
  <h2>New feedback report</h2>
  <table cellpadding="4">
    <tr><td><b>ID</b></td><td>{{.ID}}</td></tr>
    <tr><td><b>From</b></td><td>{{.UserEmail}}</td></tr>
    <tr><td><b>Category</b></td><td>{{.CategoryLabel}}</td></tr>
    <tr><td><b>Flight</b></td><td>{{if .FlightID}}{{deref .FlightID}}{{else}}-{{end}}</td></tr>
    <tr><td><b>Submitted</b></td><td>{{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</td></tr>
  </table>
  <p style="white-space:pre-wrap;">{{.Content}}</p>
</body>
</html>`

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var (
	verificationTextTmpl = texttemplate.Must(texttemplate.New("verification").Parse(verificationText))
	verificationHTMLTmpl = htmltemplate.Must(htmltemplate.New("verification").Parse(verificationHTML))
	reportTextTmpl       = texttemplate.Must(texttemplate.New("report").Funcs(texttemplate.FuncMap{"deref": deref}).Parse(reportText))
	reportHTMLTmpl       = htmltemplate.Must(htmltemplate.New("report").Funcs(htmltemplate.FuncMap{"deref": deref}).Parse(reportHTML))
)
