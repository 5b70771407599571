package utility

import (
	"fmt"

	"github.com/MHYAnate/sureshops-api/config"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email thông báo qua SMTP (kết quả kiểm duyệt, xác minh shop).
// Nếu SMTP_HOST không được cấu hình, mọi lời gọi Send là no-op.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer tạo Mailer từ cấu hình server
func NewMailer(cfg *config.Configuration) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Enabled cho biết mailer có được cấu hình hay không
func (m *Mailer) Enabled() bool {
	return m.host != ""
}

// Send gửi một email HTML tới recipient
func (m *Mailer) Send(recipient, subject, htmlContent string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("SureShops <%s>", m.from))
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
