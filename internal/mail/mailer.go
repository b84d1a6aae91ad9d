package mail

import (
	"fmt"

	"github.com/go-gomail/gomail"

	"github.com/itabaza/hms-api/internal/config"
)

// Mailer sends best-effort notification mail. Callers log failures and
// never fail a request over them.
type Mailer struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to, subject, body string) error {
	if m.cfg.User == "" {
		// no credentials configured, mail is disabled
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

func (m *Mailer) SendBookingConfirmation(to, patientName, doctorName, date, slot string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment with Dr. %s is confirmed for %s (slot %s).\n\nITABAZA",
		patientName, doctorName, date, slot,
	)
	return m.send(to, "Appointment confirmation", body)
}

func (m *Mailer) SendTicketReceipt(to, subject string, ticketID uint) error {
	body := fmt.Sprintf(
		"We received your support request #%d (%q). Our team will get back to you.\n\nITABAZA",
		ticketID, subject,
	)
	return m.send(to, "Support request received", body)
}
