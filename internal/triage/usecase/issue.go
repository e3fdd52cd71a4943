package usecase

import "strings"

// Issue messages. The keyword scan is ordered: burn, then cut/wound, then
// fever; first match wins.
const (
	issueImagePrefix = "Image analysis detected: "
	issueBurn        = "The issue appears to be a minor burn."
	issueCutOrWound  = "The issue appears to be a minor cut or wound."
	issueFever       = "The issue appears to be fever-related."
	issueFallback    = "A general health concern was reported."
)

// identifyIssue derives the single issue string for a request. An image
// prediction takes absolute precedence over the text, even when both are
// present. Pure function; always returns a non-empty string.
func identifyIssue(message, imagePrediction string) string {
	if imagePrediction != "" {
		return issueImagePrefix + imagePrediction
	}

	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "burn"):
		return issueBurn
	case strings.Contains(msg, "cut"), strings.Contains(msg, "wound"):
		return issueCutOrWound
	case strings.Contains(msg, "fever"):
		return issueFever
	}
	return issueFallback
}
