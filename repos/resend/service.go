package resend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/url"

	resend "github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"

	league "github.com/nvbf/league-desk/repos/league"
)

const DefaultFrom = "onboarding@resend.dev"

var ErrNoRecipient = errors.New("team has no email address")

// Mailer sends the welcome mail of newly registered teams.
type Mailer struct {
	client *resend.Client
	from   string
}

func NewMailer(apiKey, from string) *Mailer {
	if from == "" {
		from = DefaultFrom
	}
	return &Mailer{client: resend.NewClient(apiKey), from: from}
}

// UseBaseURL points the mailer at another API root, e.g. a local fake.
func (m *Mailer) UseBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	m.client.BaseURL = u
	return nil
}

// SendWelcome tells the team its username. The initial password equals
// the username and is not repeated in the mail.
func (m *Mailer) SendWelcome(ctx context.Context, team league.Team) error {
	if team.Email == "" {
		return ErrNoRecipient
	}
	body, err := welcomeBody(team)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{team.Email},
		Subject: fmt.Sprintf("Welcome to the league, %s", displayName(team)),
		Html:    body,
	}
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send welcome mail: %w", err)
	}
	log.Info().Str("mail_id", sent.Id).Int64("team_id", team.ID).Msg("welcome mail sent")
	return nil
}

func displayName(team league.Team) string {
	if team.Name != "" {
		return team.Name
	}
	return team.Username
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:24px;background:#eef2f5;font-family:Helvetica,Arial,sans-serif;color:#1d2630">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">
<tr><td align="center">
<table role="presentation" width="560" cellpadding="24" cellspacing="0" style="background:#fff;border-radius:6px">
<tr><td>
<h2 style="margin-top:0">Hello {{.Name}},</h2>
<p>Your team account has been created by the league administrator.</p>
<p>Username: <code style="font-size:17px">{{.Username}}</code></p>
<p>Log in with your username as the password, then complete your team profile.</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`))

func welcomeBody(team league.Team) (string, error) {
	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, struct{ Name, Username string }{displayName(team), team.Username})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
