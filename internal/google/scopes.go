package google

// DefaultOAuthScopes are the Google OAuth scopes required for full
// functionality. They are used consistently across the application for
// OAuth configurations.
//
// The scopes provide access to:
//   - Google Drive: file search and label modification
//   - Drive Labels: label schema lookups
//   - Google Sheets: report writing
//   - Gmail: sending notification emails
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Drive scope (search, metadata, modifyLabels)
	"https://www.googleapis.com/auth/drive",

	// Drive Labels scopes (label schema lookups)
	"https://www.googleapis.com/auth/drive.labels",

	// Google Sheets scope (report sink)
	"https://www.googleapis.com/auth/spreadsheets",

	// Gmail scope (notification sending only)
	"https://www.googleapis.com/auth/gmail.send",
}
