package mail

import "fmt"

// ApprovalEmail renders the credentials message sent to a team leader when
// the team is approved.
func ApprovalEmail(teamName, username, password string) (subject, body string) {
	subject = fmt.Sprintf("Welcome aboard, %s! Your registration is approved", teamName)
	body = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Registration Approved</h2>
  <p>Congratulations! Team <strong>%s</strong> has been approved for the hackathon.</p>
  <p>Use the credentials below to sign in to the team portal:</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Username</strong></td><td>%s</td></tr>
    <tr><td><strong>Password</strong></td><td>%s</td></tr>
  </table>
  <p>Once signed in you can pick your problem statement and download your entry tickets.</p>
  <p>See you at the event!</p>
</body>
</html>`, teamName, username, password)
	return subject, body
}
