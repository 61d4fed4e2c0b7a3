package notify

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Mailer sends account-facing notification e-mails.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}

// ObligationSettled notifies the owner that partial payments fully settled
// an obligation.
func (m *Mailer) ObligationSettled(to, title string, total float64) error {
	subject := "Lançamento quitado: " + title

	body := fmt.Sprintf(`
		<h2>Lançamento quitado</h2>
		<p>O lançamento <strong>%s</strong> foi totalmente quitado.</p>
		<p>Valor total: R$ %.2f</p>
		<p>Data: %s</p>
	`, title, total, time.Now().Format("02/01/2006 15:04"))

	return m.send(to, subject, body)
}
