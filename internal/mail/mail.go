// Package mail composes and delivers the transactional e-mails sent by the
// plann.er API. Composition (subjects, HTML bodies, date formatting) lives
// here so the service layer only decides *when* to send, never *what* the
// message looks like.
package mail

import "context"

// Address is a named e-mail recipient or sender.
type Address struct {
	Name  string
	Email string
}

// Message is a fully composed e-mail ready for delivery.
type Message struct {
	To      Address
	Subject string
	HTML    string
}

// Sender delivers a composed Message. Implementations: SMTPSender for real
// delivery, LogSender for local development and tests.
//
// Sends happen after the domain mutation has committed; a failed send is
// logged by the caller and never rolls the mutation back.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DefaultFrom is the sender identity used when MAIL_FROM is not configured.
var DefaultFrom = Address{Name: "Equipe plann.er", Email: "oi@plann.er"}
