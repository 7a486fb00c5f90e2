package email

// PreviewData contains sample template data for local preview/testing,
// keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"StudentName": "Ada Lovelace",
		"StudentID":   "S2024001",
	},
	TemplateEnrollmentConfirmation: {
		"StudentName": "Ada Lovelace",
		"CourseCode":  "CS101",
		"CourseName":  "Introduction to Computer Science",
	},
}
