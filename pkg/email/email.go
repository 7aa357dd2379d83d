// Package email, mülakat bildirim email'lerini gönderir.
//
// EmailSender interface'i ile gönderim detayları soyutlanır. Şu anki
// implementasyon Resend API kullanır.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
type EmailSender interface {
	// SendInterviewCompleted, recruiter'a mülakatın bittiğini bildirir.
	SendInterviewCompleted(ctx context.Context, n InterviewCompleted) error
}

// InterviewCompleted, bildirim email'inin içeriği.
type InterviewCompleted struct {
	MeetID       string
	CandidateID  string
	MessageCount int
	Saved        bool // transcript harici API'ye yazılabildi mi
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
	appURL    string
}

// NewResendSender, constructor.
//
// fromEmail: Resend'de doğrulanmış domain altında olmalı.
// toEmail: bildirimi alacak recruiter adresi.
func NewResendSender(apiKey, fromEmail, toEmail, appURL string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		toEmail:   toEmail,
		appURL:    appURL,
	}
}

var completedTmpl = template.Must(template.New("completed").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f1f5f9;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h2 style="color:#1e293b;font-size:18px;margin:0 0 24px 0;">Interview completed</h2>
              <p style="color:#475569;font-size:15px;line-height:1.6;margin:0 0 8px 0;">Meet: <b>{{.MeetID}}</b></p>
              {{if .CandidateID}}<p style="color:#475569;font-size:15px;line-height:1.6;margin:0 0 8px 0;">Candidate: <b>{{.CandidateID}}</b></p>{{end}}
              <p style="color:#475569;font-size:15px;line-height:1.6;margin:0 0 8px 0;">Messages: {{.MessageCount}}</p>
              {{if not .Saved}}<p style="color:#b91c1c;font-size:14px;margin:16px 0 0 0;">The transcript could not be saved.</p>{{end}}
              {{if .AppURL}}<p style="color:#64748b;font-size:13px;margin:24px 0 0 0;">{{.AppURL}}</p>{{end}}
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

// SendInterviewCompleted, bildirim email'ini gönderir.
func (s *resendSender) SendInterviewCompleted(ctx context.Context, n InterviewCompleted) error {
	var buf bytes.Buffer
	data := struct {
		InterviewCompleted
		AppURL string
	}{n, s.appURL}
	if err := completedTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render interview email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Mulakat <%s>", s.fromEmail),
		To:      []string{s.toEmail},
		Subject: fmt.Sprintf("Interview %s completed", n.MeetID),
		Html:    buf.String(),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send interview completed email: %w", err)
	}
	return nil
}
