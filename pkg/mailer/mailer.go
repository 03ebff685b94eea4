// Package mailer is the SMTP notification side channel. All sending is
// decoupled from the request path: handlers hand Dispatch a closure, the send
// runs on its own goroutine, and failures surface on an error channel that a
// logging drain consumes. A broken mail server can never fail a request.
package mailer

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/models"
)

// Config holds the SMTP settings, read once at startup and passed in
// explicitly rather than living in a package-level transport.
type Config struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	From     string
}

func ConfigFromEnv() Config {
	port, err := strconv.Atoi(global.GetEnvOrDefault("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("Invalid SMTP_PORT, falling back to 587: %v", err)
		port = 587
	}
	return Config{
		Host:     global.GetEnvOrDefault("SMTP_HOST", "localhost"),
		Port:     port,
		Secure:   global.GetEnvOrDefault("SMTP_SECURE", "false") == "true",
		Username: global.GetEnvOrDefault("EMAIL_USER", ""),
		Password: global.GetEnvOrDefault("EMAIL_PASS", ""),
		From:     global.GetEnvOrDefault("EMAIL_FROM", "noreply@merabazaar.com"),
	}
}

// Dialer is the slice of gomail.Dialer the mailer needs; tests substitute a
// fake so no SMTP server is required.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	cfg    Config
	dialer Dialer
	errs   chan error
}

func New(cfg Config) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Secure
	m := newMailer(cfg, d)
	go m.drain()
	return m
}

func newMailer(cfg Config, d Dialer) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: d,
		errs:   make(chan error, 16),
	}
}

func (m *Mailer) drain() {
	for err := range m.errs {
		if err != nil {
			log.Printf("mailer: %v", err)
		}
	}
}

// Dispatch runs send detached from the caller. The result lands on the error
// channel; the caller never waits on it.
func (m *Mailer) Dispatch(send func() error) {
	go func() {
		m.errs <- send()
	}()
}

func (m *Mailer) Send(to, subject, contentType, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody(contentType, body)
	return m.dialer.DialAndSend(msg)
}

// Broadcast sends the same plain-text notice to every recipient. A failure
// for one recipient is logged and the loop continues; the summary error only
// reports how many sends failed.
func (m *Mailer) Broadcast(recipients []string, subject, body string) error {
	failed := 0
	for _, to := range recipients {
		if err := m.Send(to, subject, "text/plain", body); err != nil {
			log.Printf("Error sending email to %s: %v", to, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d notification emails failed", failed, len(recipients))
	}
	return nil
}

// SendOrderConfirmation mails the order summary to the snapshot email stored
// on the order.
func (m *Mailer) SendOrderConfirmation(order *models.Order) error {
	body := fmt.Sprintf(`<div>
  <h2>Order Confirmation</h2>
  <p>Hi %s,</p>
  <p>Your order has been placed successfully!</p>
  <p><strong>Order ID:</strong> %s</p>
  <p><strong>Tracking ID:</strong> %s</p>
  <p><strong>Total Price:</strong> $%.2f</p>`,
		order.Name, order.OrderID, order.TrackingID, order.Price)
	if order.FreeDelivery {
		body += "\n  <p><strong>Free Delivery:</strong> Yes</p>"
	}
	if order.DiscountApplied > 0 {
		body += fmt.Sprintf("\n  <p><strong>Discount Applied:</strong> $%.2f</p>", order.DiscountApplied)
	}
	body += "\n  <p>Thank you for shopping with us!</p>\n</div>"

	return m.Send(order.Email, "Order Confirmation", "text/html", body)
}
