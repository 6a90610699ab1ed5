package utils

import (
	"net/smtp"
	"os"
)

// SendMail delivers a raw RFC 822 message. Mail is best effort: a
// missing configuration or SMTP failure is logged and swallowed so the
// intake path never fails because of it.
func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	if from == "" || password == "" {
		LogInfo("SMTP not configured, skipping outgoing mail")
		return
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
	if err != nil {
		LogError(err, "Error sending email")
		return
	}

	LogSuccess("Email sent to " + email)
}
