package email

// Template names an HTML file under templates/.
type Template string

const (
	TemplateWelcome                Template = "welcome"
	TemplateEnrollmentConfirmation Template = "enrollment_confirmation"
)
