package notification

import "fmt"

func VerificationCodeMessage(code string) string {
	return fmt.Sprintf("[SitePass] verification code: %s", code)
}

func InviteMessage(companyName, link string) string {
	return fmt.Sprintf("[SitePass] %s invited you. Complete sign-up here: %s (valid for 7 days)", companyName, link)
}

// StatusChangedMessage returns the SMS for an enrollment outcome, or "" when
// the status change is not worth a message.
func StatusChangedMessage(from, to string) string {
	switch to {
	case "ACTIVE":
		if from != "REQUESTED" {
			return ""
		}
		return "[SitePass] Your enrollment was approved. You can now check in."
	case "REJECTED":
		return "[SitePass] Your enrollment request was rejected. Contact your site manager."
	case "BLOCKED":
		return "[SitePass] Your access has been suspended. Contact your site manager."
	default:
		return ""
	}
}
