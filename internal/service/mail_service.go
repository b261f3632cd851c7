package service

import (
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strconv"

	"zarcaro/config"
)

// MailService sends operator notifications over SMTP. When any of the SMTP
// settings or the operator address is missing the service is a no-op.
type MailService struct {
	cfg *config.SMTPConfig
}

func NewMailService(cfg *config.SMTPConfig) *MailService {
	return &MailService{cfg: cfg}
}

func (s *MailService) configured() bool {
	return s.cfg.Host != "" && s.cfg.Port != 0 && s.cfg.User != "" &&
		s.cfg.Password != "" && s.cfg.ContactEmail != ""
}

// NotifyContact mails a contact-form submission to the operator address.
func (s *MailService) NotifyContact(name, email, message string) error {
	if !s.configured() {
		log.Printf("[Mail] skipping contact notification: SMTP not configured")
		return nil
	}
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: New contact form submission\r\n\r\nMessage from %s <%s>:\n\n%s",
		s.cfg.User, s.cfg.ContactEmail, name, email, message)
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	// SendMail upgrades to STARTTLS when the server offers it.
	return smtp.SendMail(addr, auth, s.cfg.User, []string{s.cfg.ContactEmail}, []byte(body))
}
