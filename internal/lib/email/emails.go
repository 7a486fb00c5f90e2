package email

// SendWelcomeEmail greets a newly registered student.
func (c *Client) SendWelcomeEmail(to, studentName, studentID string) error {
	data := map[string]string{
		"StudentName": studentName,
		"StudentID":   studentID,
	}

	return c.SendEmail(
		to,
		"Welcome to Student Records!",
		TemplateWelcome,
		data,
	)
}

// SendEnrollmentConfirmationEmail tells a student they were enrolled in a
// course.
func (c *Client) SendEnrollmentConfirmationEmail(to, studentName, courseCode, courseName string) error {
	data := map[string]string{
		"StudentName": studentName,
		"CourseCode":  courseCode,
		"CourseName":  courseName,
	}

	return c.SendEmail(
		to,
		"Enrollment confirmed: "+courseCode,
		TemplateEnrollmentConfirmation,
		data,
	)
}
