package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

type SMTPMailer struct {
	fromEmail string
	dialer    dialer
	backoff   time.Duration
	sleep     func(time.Duration)
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("from email is required")
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = 10 * time.Second

	return &SMTPMailer{
		fromEmail: cfg.FromEmail,
		dialer:    d,
		backoff:   time.Second,
		sleep:     time.Sleep,
	}, nil
}

func (m *SMTPMailer) Send(templateFile, username, email string, data any) error {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", templateFile, err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return err
	}

	message := mail.NewMessage()
	message.SetAddressHeader("From", m.fromEmail, FromName)
	message.SetAddressHeader("To", email, username)
	message.SetHeader("Subject", subject.String())
	message.SetHeader("Message-ID", fmt.Sprintf("<%s@conecta>", uuid.NewString()))
	message.SetBody("text/html", body.String())

	sleep := m.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for i := 0; i < maxRetires; i++ {
		if lastErr = m.dialer.DialAndSend(message); lastErr == nil {
			return nil
		}
		if i == maxRetires-1 {
			break
		}

		// exponential backoff
		sleep(m.backoff * time.Duration(1<<i))
	}

	return fmt.Errorf("failed to send email after %d attempts, error: %w", maxRetires, lastErr)
}
