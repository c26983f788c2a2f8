// Package mailer delivers transactional email through an SMTP relay.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

// Mailer sends mail through a configured SMTP relay. Sends are throttled to
// stay under relay submission limits.
type Mailer struct {
	client  *mail.Client
	from    string
	limiter *rate.Limiter
}

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// SendsPerSecond caps outbound deliveries; zero means one per second.
	SendsPerSecond float64
}

// New creates a Mailer for the given relay. Returns nil without error when
// no host is configured, in which case sends are logged and dropped.
func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	rps := cfg.SendsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Mailer{
		client:  client,
		from:    fmt.Sprintf("UniTeam <%s>", cfg.Username),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Send delivers a plain-text message. A nil Mailer logs and drops the
// message so callers need no relay in development.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m == nil {
		slog.Info("mailer not configured, dropping message", "to", to, "subject", subject)
		return nil
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}

	return nil
}

// SendWelcome mails a newly created user their initial credentials.
func (m *Mailer) SendWelcome(ctx context.Context, to, firstName, password, frontendURL string) error {
	subject := "Bienvenue sur la plateforme UniTeam !"
	body := fmt.Sprintf(`Bonjour %s,

La plateforme UniTeam vous annonce que l'administrateur a créé un compte pour vous. Voici vos informations de connexion :

    Email : %s
    Mot de passe : %s

Vous pouvez vous connecter à la plateforme en cliquant sur le lien suivant : %s

Merci,
L'équipe UniTeam
`, firstName, to, password, frontendURL)

	return m.Send(ctx, to, subject, body)
}
