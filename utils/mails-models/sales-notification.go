package mailsmodels

import (
	"fmt"
	"os"
	"tatva-backend/utils"
)

// SalesNotification alerts the sales inbox that a new submission
// arrived. Skipped silently when SALES_INBOX is not configured.
func SalesNotification(data SubmissionEmailData) {
	inbox := os.Getenv("SALES_INBOX")
	if inbox == "" {
		return
	}

	subject := "Subject: New " + data.Kind + ": " + data.Subject + "\r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="padding: 20px; font-family: sans-serif;">
		<h2>New %s</h2>
		<table cellpadding="6">
			<tbody>
				<tr><td><strong>Name</strong></td><td>%s</td></tr>
				<tr><td><strong>Email</strong></td><td>%s</td></tr>
				<tr><td><strong>Phone</strong></td><td>%s</td></tr>
				<tr><td><strong>Subject</strong></td><td>%s</td></tr>
			</tbody>
		</table>
		<blockquote style="background-color: #f5f5f5; padding: 15px;">%s</blockquote>
		<p>Review it in the admin console.</p>
	</div>
`, data.Kind, data.Name, data.Email, data.Phone, data.Subject, data.Body)

	message := []byte(subject + mime + body)
	utils.SendMail(inbox, message)
}
