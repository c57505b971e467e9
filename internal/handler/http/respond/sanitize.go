package respond

import (
	"regexp"
)

var (
	// Showcase API keys appear in request URLs when upstream calls fail
	apiKeyQueryPattern = regexp.MustCompile(`api_key=[a-zA-Z0-9-_]+`)

	// Slack webhook URLs embed a secret token in their path
	slackWebhookPattern = regexp.MustCompile(`hooks\.slack\.com/services/[a-zA-Z0-9/]+`)

	// Database passwords inside DSNs
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = apiKeyQueryPattern.ReplaceAllString(msg, "api_key=****")
	msg = slackWebhookPattern.ReplaceAllString(msg, "hooks.slack.com/services/****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
