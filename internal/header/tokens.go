package header

// Placeholder tokens a configuration author may embed in template bodies and
// copyright notices. Tokens absent from a body are simply not emitted.
const (
	TokenCopyrightNotice  = "#copyright_notice"
	TokenFileCreation     = "#file_creation"
	TokenDateNow          = "#date_now"
	TokenRelativePath     = "#file_relative_path"
	TokenProjectName      = "#project_name"
	TokenAuthorName       = "#author_name"
	TokenAuthorMail       = "#author_mail"
	TokenCopyrightHolders = "#cp_holders"
	TokenCopyrightYear    = "#cp_year"
)

// substitution is one entry of the ordered replacement table applied to a
// template body. Adding a token is a table edit, not a code change.
type substitution struct {
	token string
	value string
}

// bracketed wraps a non-empty value in angle brackets. Empty values stay
// empty so that templates never emit bare "<>".
func bracketed(v string) string {
	if v == "" {
		return ""
	}
	return "<" + v + ">"
}
