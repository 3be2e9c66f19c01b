package mail

import (
	"context"
	"time"

	"study-booking/internal/domain/notification"
	"study-booking/internal/pkg/errs"

	gomail "github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPChannel submits over SMTP with mandatory STARTTLS.
type SMTPChannel struct {
	cfg SMTPConfig
}

func NewSMTPChannel(cfg SMTPConfig) *SMTPChannel {
	return &SMTPChannel{cfg: cfg}
}

func (c *SMTPChannel) Name() string { return "smtp" }

func (c *SMTPChannel) Send(ctx context.Context, msg notification.Message) (string, error) {
	m, err := c.buildMessage(msg)
	if err != nil {
		return "", err
	}

	opts := []gomail.Option{
		gomail.WithPort(c.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(c.cfg.Timeout),
	}
	if c.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(c.cfg.Username),
			gomail.WithPassword(c.cfg.Password),
		)
	}

	client, err := gomail.NewClient(c.cfg.Host, opts...)
	if err != nil {
		return "", errs.Wrap(err, "smtp client")
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", errs.Wrap(err, "smtp send failed")
	}

	return messageID(m), nil
}

func (c *SMTPChannel) buildMessage(msg notification.Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(c.cfg.From); err != nil {
		return nil, errs.Wrapf(err, "invalid sender %q", c.cfg.From)
	}
	if err := m.AddToFormat(msg.To.Name, msg.To.Email); err != nil {
		return nil, errs.Wrap(err, "invalid recipient")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	m.SetMessageID()
	m.SetDate()
	return m, nil
}

func messageID(m *gomail.Msg) string {
	if ids := m.GetGenHeader(gomail.HeaderMessageID); len(ids) > 0 {
		return ids[0]
	}
	return ""
}
