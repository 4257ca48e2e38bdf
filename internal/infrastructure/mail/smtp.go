package mail

import "gopkg.in/gomail.v2"

// NewDialer returns an SMTP dialer; gomail opens a connection per send.
func NewDialer(host string, port int, user, pass string) *gomail.Dialer {
	return gomail.NewDialer(host, port, user, pass)
}
