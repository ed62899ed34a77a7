package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"interview-marketplace-backend/internal/domain"
)

var funcs = map[string]any{
	"rating": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}

// layoutHTML wraps every HTML email body.
const layoutHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .label { font-weight: bold; color: #555; }
        .box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .muted { color: #999; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>{{template "title" .}}</h1></div>
        <div class="content">{{template "content" .}}</div>
        <div class="footer"><p>You are receiving this email because you have an account on the interview marketplace.</p></div>
    </div>
</body>
</html>`

type emailTemplate struct {
	title string
	html  string
	text  string
}

var emailTemplates = map[string]emailTemplate{
	domain.TemplateInterviewRequested: {
		title: "New Interview Request",
		html: `<p>Hi {{.RecipientName}},</p>
<p>{{.CounterpartName}} requested an interview{{if .Position}} for <b>{{.Position}}</b>{{end}}.</p>
<div class="box"><div class="label">When</div><div>{{.Date}}, {{.Time}}</div></div>`,
		text: `Hi {{.RecipientName}},

{{.CounterpartName}} requested an interview{{if .Position}} for {{.Position}}{{end}}.
When: {{.Date}}, {{.Time}}
`,
	},
	domain.TemplateInterviewApproved: {
		title: "Interview Confirmed",
		html: `<p>Hi {{.RecipientName}},</p>
<p>Your interview with {{.CounterpartName}} is confirmed.</p>
<div class="box"><div class="label">When</div><div>{{.Date}}, {{.Time}}</div>
<div class="label">Meeting link</div><div><a href="{{.MeetingLink}}">{{.MeetingLink}}</a></div></div>`,
		text: `Hi {{.RecipientName}},

Your interview with {{.CounterpartName}} is confirmed.
When: {{.Date}}, {{.Time}}
Meeting link: {{.MeetingLink}}
`,
	},
	domain.TemplateInterviewCancelled: {
		title: "Interview Cancelled",
		html: `<p>Hi {{.RecipientName}},</p>
<p>Your interview with {{.CounterpartName}} on {{.Date}}, {{.Time}} has been cancelled.</p>`,
		text: `Hi {{.RecipientName}},

Your interview with {{.CounterpartName}} on {{.Date}}, {{.Time}} has been cancelled.
`,
	},
	domain.TemplateRescheduleRequested: {
		title: "Reschedule Requested",
		html: `<p>Hi {{.RecipientName}},</p>
<p>{{.CounterpartName}} asked to move your interview to a new time.</p>
<div class="box"><div class="label">Proposed time</div><div>{{.Date}}, {{.Time}}</div></div>
{{if .ApproveURL}}<p><a href="{{.ApproveURL}}">Approve</a> &middot; <a href="{{.RejectURL}}">Reject</a></p>{{else}}<p>Open your dashboard to approve or reject the new time.</p>{{end}}`,
		text: `Hi {{.RecipientName}},

{{.CounterpartName}} asked to move your interview to {{.Date}}, {{.Time}}.
{{if .ApproveURL}}Approve: {{.ApproveURL}}
Reject: {{.RejectURL}}
{{else}}Open your dashboard to approve or reject the new time.
{{end}}`,
	},
	domain.TemplateRescheduleApproved: {
		title: "Reschedule Approved",
		html: `<p>Hi {{.RecipientName}},</p>
<p>Your interview with {{.CounterpartName}} has been moved.</p>
<div class="box"><div class="label">New time</div><div>{{.Date}}, {{.Time}}</div>
<div class="label">Your meeting link</div><div><a href="{{.MeetingLink}}">{{.MeetingLink}}</a></div></div>`,
		text: `Hi {{.RecipientName}},

Your interview with {{.CounterpartName}} has been moved to {{.Date}}, {{.Time}}.
Your meeting link: {{.MeetingLink}}
`,
	},
	domain.TemplateRescheduleRejected: {
		title: "Reschedule Rejected",
		html: `<p>Hi {{.RecipientName}},</p>
<p>The request to move your interview with {{.CounterpartName}} to {{.Date}}, {{.Time}} was rejected and the interview has been cancelled.</p>`,
		text: `Hi {{.RecipientName}},

The request to move your interview with {{.CounterpartName}} to {{.Date}}, {{.Time}} was rejected and the interview has been cancelled.
`,
	},
	domain.TemplateFeedbackReceived: {
		title: "You Received Feedback",
		html: `<p>Hi {{.RecipientName}},</p>
<p>Your average rating is now <b>{{rating .AverageRating}}</b> across {{.TotalFeedback}} feedback(s).</p>
{{range .Entries}}<div class="box"><div class="label">Rating {{rating .Rating}}</div>
{{if .Obscured}}<div class="muted">Open your dashboard to read this feedback.</div>
{{else}}{{range .Sections}}<div>{{.Name}}: {{rating .Rating}}{{if .Comments}} - {{.Comments}}{{end}}</div>
{{end}}{{end}}</div>
{{end}}<p><a href="{{.ProfileURL}}">View all feedback</a></p>`,
		text: `Hi {{.RecipientName}},

Your average rating is now {{rating .AverageRating}} across {{.TotalFeedback}} feedback(s).
{{range .Entries}}
Rating {{rating .Rating}}
{{if .Obscured}}  Open your dashboard to read this feedback.
{{else}}{{range .Sections}}  {{.Name}}: {{rating .Rating}}{{if .Comments}} - {{.Comments}}{{end}}
{{end}}{{end}}{{end}}
View all feedback: {{.ProfileURL}}
`,
	},
	domain.TemplateProfileIncomplete: {
		title: "Complete Your Profile",
		html: `<p>Hi {{.RecipientName}},</p>
<p>Your profile is {{.TotalPercentage}}% complete. Finish these sections to get more interviews:</p>
<ul>{{range .Missing}}<li>{{.Name}} (+{{.Percentage}}%)</li>{{end}}</ul>
<p><a href="{{.ProfileURL}}">Update your profile</a></p>`,
		text: `Hi {{.RecipientName}},

Your profile is {{.TotalPercentage}}% complete. Finish these sections to get more interviews:
{{range .Missing}}- {{.Name}} (+{{.Percentage}}%)
{{end}}
Update your profile: {{.ProfileURL}}
`,
	},
}

// Renderer renders the notification templates. Templates are parsed once.
type Renderer struct {
	html map[string]*htmltemplate.Template
	text map[string]*texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := htmltemplate.New("layout").Funcs(funcs).Parse(layoutHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email layout: %w", err)
	}

	r := &Renderer{
		html: make(map[string]*htmltemplate.Template, len(emailTemplates)),
		text: make(map[string]*texttemplate.Template, len(emailTemplates)),
	}
	for name, et := range emailTemplates {
		h, err := base.Clone()
		if err != nil {
			return nil, err
		}
		body := `{{define "title"}}` + et.title + `{{end}}{{define "content"}}` + et.html + `{{end}}`
		if _, err := h.Parse(body); err != nil {
			return nil, fmt.Errorf("failed to parse %s html template: %w", name, err)
		}
		t, err := texttemplate.New(name).Funcs(funcs).Parse(et.text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s text template: %w", name, err)
		}
		r.html[name] = h
		r.text[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(name string, data any) (string, string, error) {
	h, ok := r.html[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	var text, html bytes.Buffer
	if err := r.text[name].Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to execute %s text template: %w", name, err)
	}
	if err := h.ExecuteTemplate(&html, "layout", data); err != nil {
		return "", "", fmt.Errorf("failed to execute %s html template: %w", name, err)
	}
	return text.String(), html.String(), nil
}
