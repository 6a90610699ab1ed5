package mailsmodels

import (
	"fmt"
	"tatva-backend/utils"
)

type SubmissionEmailData struct {
	Kind    string // "contact request", "product inquiry", "service inquiry"
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// SubmissionConfirmation acknowledges an intake submission to its sender
func SubmissionConfirmation(data SubmissionEmailData) {
	subject := "Subject: We received your " + data.Kind + " - Tatva Engineering\r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1D4ED8; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Thank you for reaching out!</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Hello %s,</p>
						<p>We received your %s regarding: "%s"</p>
						<p>Our team will get back to you shortly.</p>
						<p>Your message:</p>
						<blockquote style="background-color: #f5f5f5; padding: 15px; border-left: 5px solid #1D4ED8;">
							%s
						</blockquote>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, data.Name, data.Kind, data.Subject, data.Body)

	message := []byte(subject + mime + body)
	utils.SendMail(data.Email, message)
}
