package services

import "fmt"

func issuedEmailBody(studentName, certNumber, verificationURL string) string {
	return fmt.Sprintf(`
  <div style="font-family: Arial, sans-serif; line-height:1.6;">
    <h2>Congratulations %s,</h2>
    <p>Your internship certificate has been successfully issued by <b>%s</b></p>
    <p><b>Certificate No:</b> %s</p>
    <p>You can verify your certificate anytime using this link:</p>
    <a href="%s" target="_blank">%s</a>
    <br/><br/>
    <p>Best Regards,<br/><b>Team Vaastman Solutions</b></p>
  </div>
  `, studentName, companyName, certNumber, verificationURL, verificationURL)
}

func reissuedEmailBody(studentName, certNumber string) string {
	return fmt.Sprintf(`
  <div style="font-family: Arial, sans-serif; line-height:1.6;">
    <h2>Hello %s,</h2>
    <p>Your certificate <b>%s</b> has been re-issued after correction.</p>
    <p>Please find the updated version attached below.</p>
    <br/>
    <p>Best Regards,<br/><b>Team %s</b></p>
  </div>
  `, studentName, certNumber, companyName)
}

func revokedEmailBody(studentName, certNumber string) string {
	return fmt.Sprintf(`
  <div style="font-family: Arial, sans-serif; line-height:1.6;">
    <h2>Hello %s,</h2>
    <p>Your certificate <b>%s</b> has been <b>revoked</b> by the admin due to verification issues.</p>
    <p>If you believe this is an error, please contact support.</p>
    <br/>
    <p>Regards,<br/><b>Team Vaastman Solutions</b></p>
  </div>
  `, studentName, certNumber)
}

func restoredEmailBody(studentName, certNumber string) string {
	return fmt.Sprintf(`
  <div style="font-family: Arial, sans-serif; line-height:1.6;">
    <h2>Hello %s,</h2>
    <p>Your certificate <b>%s</b> has been <b>restored</b> and is now valid again.</p>
    <p>You can verify it anytime from the official verification portal.</p>
    <br/>
    <p>Regards,<br/><b>Team Vaastman Solutions</b></p>
  </div>
  `, studentName, certNumber)
}
