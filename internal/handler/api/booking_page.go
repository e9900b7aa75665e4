package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"airease-backend/internal/domain/booking"

	"github.com/gin-gonic/gin"
)

const pageHead = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<title>{{.Title}}</title>
</head>
<body style="font-family:Arial,Helvetica,sans-serif;color:#222;background:#f5f7fb;">
<div style="max-width:520px;margin:60px auto;background:#fff;border:1px solid #e6eef6;padding:28px;border-radius:8px;text-align:center;">
`

const pageFoot = `</div>
</body>
</html>`

var (
	redirectTmpl = template.Must(template.New("redirect").Parse(pageHead + `
<h2>Taking you to {{.BookWith}}</h2>
{{if .Price}}<p style="font-size:24px;font-weight:bold;">{{.Price}}</p>{{end}}
<form id="bookingForm" action="{{.URL}}" method="POST">
{{range .Fields}}<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{end}}<noscript><button type="submit">Continue to {{.BookWith}}</button></noscript>
</form>
<script>document.getElementById("bookingForm").submit();</script>
` + pageFoot))

	phoneTmpl = template.Must(template.New("phone").Parse(pageHead + `
<h2>Book by phone with {{.BookWith}}</h2>
<p>This fare is only sold over the phone.</p>
<p style="font-size:24px;font-weight:bold;"><a href="tel:{{.Phone}}">{{.Phone}}</a></p>
{{if .Price}}<p>{{.Price}}</p>{{end}}
` + pageFoot))

	errorTmpl = template.Must(template.New("error").Parse(pageHead + `
<h2>{{.Message}}</h2>
<p style="color:#555;">{{.Details}}</p>
` + pageFoot))
)

type bookingPage struct {
	Title    string
	BookWith string
	Price    string
	URL      string
	Fields   []booking.Field
	Phone    string
}

type errorPage struct {
	Title   string
	Message string
	Details string
}

func newBookingPage(t booking.Target, currency string) bookingPage {
	p := bookingPage{
		Title:    "Redirecting to " + t.BookWith,
		BookWith: t.BookWith,
		URL:      t.URL,
		Fields:   t.Fields,
		Phone:    t.Phone,
	}
	if p.BookWith == "" {
		p.BookWith = "the airline"
	}
	if t.Price != nil {
		p.Price = fmt.Sprintf("%s %.0f", currency, *t.Price)
	}
	return p
}

func renderPage(c *gin.Context, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func abortWithErrorPage(c *gin.Context, status int, err error, message, details string) {
	_ = c.Error(err)
	renderPage(c, status, errorTmpl, errorPage{Title: message, Message: message, Details: details})
	c.Abort()
}
