package contact

import (
	"strings"
)

// Message is the composed notification email. Both bodies are rendered from
// the same Submission and carry the same fields in the same section order.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// subjectServiceNames maps service codes to the short names used in subject
// lines. Unknown codes pass through verbatim.
var subjectServiceNames = map[string]string{
	"seo":       "SEO",
	"ai":        "AI Automation",
	"reminders": "Reminders",
	"custom":    "Custom Tools",
	"general":   "General",
}

// bodyServiceNames maps service codes to the longer display names used in
// the email body.
var bodyServiceNames = map[string]string{
	"seo":       "SEO & Visibility",
	"ai":        "AI Automation",
	"reminders": "Appointment Reminders",
	"custom":    "Custom Tools",
	"general":   "General Inquiry",
}

// Compose renders the notification email for a submission. It is a pure
// function of its input: no I/O, deterministic, safe to call concurrently.
func Compose(s Submission) Message {
	return Message{
		Subject: subject(s),
		HTML:    renderHTML(s),
		Text:    renderText(s),
	}
}

// subject derives a sales-focused subject line; the first matching rule wins.
func subject(s Submission) string {
	if s.SelectedPackage != "" {
		return "New " + strings.ToUpper(s.SelectedPackage) + " Package Lead – DoroLabs"
	}
	if s.SelectedService != "" {
		name := s.SelectedService
		if display, ok := subjectServiceNames[s.SelectedService]; ok {
			name = display
		}
		return "New Lead (" + name + ") – DoroLabs"
	}
	if s.Interest != "" || s.Service != "" {
		hint := s.Interest
		if hint == "" {
			hint = s.Service
		}
		return "New Lead – DoroLabs [" + hint + "]"
	}
	return "New Lead – DoroLabs"
}

func bodyServiceName(code string) string {
	if display, ok := bodyServiceNames[code]; ok {
		return display
	}
	return code
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// escapeHTML escapes the five reserved markup characters. Every
// user-supplied value inserted into the HTML body goes through here.
func escapeHTML(v string) string {
	return htmlEscaper.Replace(v)
}

func htmlRow(label, valueHTML string) string {
	return `<tr><td style="padding: 6px 12px; color: #666;">` + label +
		`</td><td style="padding: 6px 12px;">` + valueHTML + `</td></tr>`
}

func htmlRowStrong(label, valueHTML string) string {
	return `<tr><td style="padding: 6px 12px; color: #666;">` + label +
		`</td><td style="padding: 6px 12px; font-weight: 600;">` + valueHTML + `</td></tr>`
}

func htmlSection(title string, rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div style="margin-bottom: 16px;">`)
	b.WriteString(`<div style="background: #283d3d; color: white; padding: 8px 12px; font-size: 13px; font-weight: 600; text-transform: uppercase; letter-spacing: 0.5px;">`)
	b.WriteString(title)
	b.WriteString(`</div>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; background: #fafafa; border: 1px solid #e0e0e0; border-top: none;">`)
	for _, row := range rows {
		b.WriteString(row)
	}
	b.WriteString(`</table></div>`)
	return b.String()
}

func renderHTML(s Submission) string {
	var interest []string
	if s.SelectedPackage != "" {
		interest = append(interest, htmlRowStrong("Package", escapeHTML(strings.ToUpper(s.SelectedPackage))))
	}
	if s.SelectedService != "" {
		interest = append(interest, htmlRowStrong("Service", escapeHTML(bodyServiceName(s.SelectedService))))
	}
	if s.Interest != "" {
		interest = append(interest, htmlRow("Interest", escapeHTML(s.Interest)))
	}
	if s.Service != "" {
		interest = append(interest, htmlRow("Form Service", escapeHTML(s.Service)))
	}
	if s.Budget != "" {
		interest = append(interest, htmlRowStrong("Budget", escapeHTML(s.Budget)))
	}

	contactRows := []string{
		htmlRow("Name", escapeHTML(s.Name)),
		htmlRow("Email", `<a href="mailto:`+escapeHTML(s.Email)+`" style="color: #283d3d;">`+escapeHTML(s.Email)+`</a>`),
	}
	if s.Phone != "" {
		contactRows = append(contactRows, htmlRow("Phone", `<a href="tel:`+escapeHTML(s.Phone)+`" style="color: #283d3d;">`+escapeHTML(s.Phone)+`</a>`))
	}

	var business []string
	if s.Company != "" {
		business = append(business, htmlRow("Company", escapeHTML(s.Company)))
	}
	if s.ExistingWebsite != "" {
		business = append(business, htmlRow("Has Website", escapeHTML(s.ExistingWebsite)))
	}
	if s.Message != "" {
		body := strings.ReplaceAll(escapeHTML(s.Message), "\n", "<br>")
		business = append(business, `<tr><td style="padding: 6px 12px; color: #666; vertical-align: top;">Message</td><td style="padding: 6px 12px;">`+body+`</td></tr>`)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n<title>New Lead</title>\n</head>\n")
	b.WriteString(`<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.5; color: #333; max-width: 500px; margin: 0 auto; padding: 16px; background: #f5f5f5;">` + "\n")
	b.WriteString(`<div style="background: white; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">` + "\n")
	b.WriteString(htmlSection("Package & Service Interest", interest))
	b.WriteString(htmlSection("Contact Details", contactRows))
	b.WriteString(htmlSection("Business Context", business))
	b.WriteString("\n")
	b.WriteString(`<div style="padding: 12px; font-size: 11px; color: #999; text-align: center; border-top: 1px solid #eee;">DoroLabs Website Form • Reply to respond</div>` + "\n")
	b.WriteString("</div>\n</body>\n</html>")
	return b.String()
}

const textDivider = "──────────────────────────────"

func renderText(s Submission) string {
	var lines []string

	if s.SelectedPackage != "" || s.SelectedService != "" || s.Interest != "" || s.Service != "" || s.Budget != "" {
		lines = append(lines, "PACKAGE & SERVICE INTEREST", textDivider)
		if s.SelectedPackage != "" {
			lines = append(lines, "Package:     "+strings.ToUpper(s.SelectedPackage))
		}
		if s.SelectedService != "" {
			lines = append(lines, "Service:     "+bodyServiceName(s.SelectedService))
		}
		if s.Interest != "" {
			lines = append(lines, "Interest:    "+s.Interest)
		}
		if s.Service != "" {
			lines = append(lines, "Form Svc:    "+s.Service)
		}
		if s.Budget != "" {
			lines = append(lines, "Budget:      "+s.Budget)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "CONTACT DETAILS", textDivider)
	lines = append(lines, "Name:        "+s.Name)
	lines = append(lines, "Email:       "+s.Email)
	if s.Phone != "" {
		lines = append(lines, "Phone:       "+s.Phone)
	}
	lines = append(lines, "")

	if s.Company != "" || s.ExistingWebsite != "" || s.Message != "" {
		lines = append(lines, "BUSINESS CONTEXT", textDivider)
		if s.Company != "" {
			lines = append(lines, "Company:     "+s.Company)
		}
		if s.ExistingWebsite != "" {
			lines = append(lines, "Has Website: "+s.ExistingWebsite)
		}
		if s.Message != "" {
			lines = append(lines, "", "Message:", s.Message)
		}
		lines = append(lines, "")
	}

	lines = append(lines, textDivider, "DoroLabs Website Form • Reply to respond")
	return strings.Join(lines, "\n")
}
