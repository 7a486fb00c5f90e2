// Package testutil provides in-memory stand-ins for the database and job
// queue so services and handlers can be tested without Postgres or Redis.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/student-records/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// Store keeps users, students, courses and enrollments in memory. It
// mirrors the table constraints: unique keys and foreign keys fail with
// the same *pgconn.PgError Postgres would return, deletes cascade, and a
// missing row is pgx.ErrNoRows.
type Store struct {
	// Err, when set, is returned by every call.
	Err error

	mu          sync.Mutex
	nextID      int64
	users       map[string]model.User
	students    map[int64]model.Student
	courses     map[int64]model.Course
	enrollments map[int64]model.Enrollment
}

func NewStore() *Store {
	return &Store{
		users:       map[string]model.User{},
		students:    map[int64]model.Student{},
		courses:     map[int64]model.Course{},
		enrollments: map[int64]model.Enrollment{},
	}
}

// AddUser stores a user with a bcrypt hash of password.
func (s *Store) AddUser(username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = model.User{ID: s.id(), Username: username, PasswordHash: string(hash)}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func uniqueViolation(table, constraint string) error {
	return &pgconn.PgError{Code: "23505", TableName: table, ConstraintName: constraint, Severity: "ERROR"}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", TableName: "enrollments", ConstraintName: constraint, Severity: "ERROR"}
}

func sortedValues[T any](m map[int64]T) []T {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// Users

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (s *Store) CreateUserIfNotExists(_ context.Context, username, passwordHash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	if _, ok := s.users[username]; ok {
		return false, nil
	}
	s.users[username] = model.User{ID: s.id(), Username: username, PasswordHash: passwordHash}
	return true, nil
}

// Students

func (s *Store) ListStudents(context.Context) ([]model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return sortedValues(s.students), nil
}

func (s *Store) GetStudentByID(_ context.Context, id int64) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	st, ok := s.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &st, nil
}

func (s *Store) ExistsByStudentID(_ context.Context, studentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	return s.findStudent(func(st model.Student) bool { return st.StudentID == studentID }, 0), nil
}

func (s *Store) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	return s.findStudent(func(st model.Student) bool { return st.Email == email }, 0), nil
}

// findStudent reports whether a student other than skip matches.
func (s *Store) findStudent(match func(model.Student) bool, skip int64) bool {
	for id, st := range s.students {
		if id != skip && match(st) {
			return true
		}
	}
	return false
}

func (s *Store) checkStudentUnique(st *model.Student) error {
	if s.findStudent(func(o model.Student) bool { return o.StudentID == st.StudentID }, st.ID) {
		return uniqueViolation("students", "students_student_id_key")
	}
	if s.findStudent(func(o model.Student) bool { return o.Email == st.Email }, st.ID) {
		return uniqueViolation("students", "students_email_key")
	}
	return nil
}

func (s *Store) CreateStudent(_ context.Context, st *model.Student) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.checkStudentUnique(st); err != nil {
		return nil, err
	}
	created := *st
	created.ID = s.id()
	created.EnrollmentDate = today()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.students[created.ID] = created
	return &created, nil
}

func (s *Store) UpdateStudent(_ context.Context, st *model.Student) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	existing, ok := s.students[st.ID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if err := s.checkStudentUnique(st); err != nil {
		return nil, err
	}
	updated := *st
	updated.EnrollmentDate = existing.EnrollmentDate
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.students[st.ID] = updated
	return &updated, nil
}

func (s *Store) DeleteStudent(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.students[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.students, id)
	for eid, e := range s.enrollments {
		if e.StudentID == id {
			delete(s.enrollments, eid)
		}
	}
	return nil
}

func (s *Store) ListStudentCourses(_ context.Context, id int64) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.Course{}
	for _, e := range sortedValues(s.enrollments) {
		if e.StudentID == id {
			out = append(out, s.courses[e.CourseID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Courses

func (s *Store) ListCourses(context.Context) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return sortedValues(s.courses), nil
}

func (s *Store) GetCourseByID(_ context.Context, id int64) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.courses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (s *Store) ExistsByCourseCode(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	return s.courseCodeTaken(code, 0), nil
}

func (s *Store) courseCodeTaken(code string, skip int64) bool {
	for id, c := range s.courses {
		if id != skip && c.CourseCode == code {
			return true
		}
	}
	return false
}

func (s *Store) CreateCourse(_ context.Context, c *model.Course) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.courseCodeTaken(c.CourseCode, 0) {
		return nil, uniqueViolation("courses", "courses_course_code_key")
	}
	created := *c
	created.ID = s.id()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.courses[created.ID] = created
	return &created, nil
}

func (s *Store) UpdateCourse(_ context.Context, c *model.Course) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	existing, ok := s.courses[c.ID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if s.courseCodeTaken(c.CourseCode, c.ID) {
		return nil, uniqueViolation("courses", "courses_course_code_key")
	}
	updated := *c
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.courses[c.ID] = updated
	return &updated, nil
}

func (s *Store) DeleteCourse(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.courses[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.courses, id)
	for eid, e := range s.enrollments {
		if e.CourseID == id {
			delete(s.enrollments, eid)
		}
	}
	return nil
}

func (s *Store) ListCourseStudents(_ context.Context, id int64) ([]model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.Student{}
	for _, e := range sortedValues(s.enrollments) {
		if e.CourseID == id {
			out = append(out, s.students[e.StudentID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Enrollments

func (s *Store) detail(e model.Enrollment) model.EnrollmentDetail {
	return model.EnrollmentDetail{
		Enrollment:  e,
		StudentName: s.students[e.StudentID].Name,
		CourseName:  s.courses[e.CourseID].Name,
	}
}

func (s *Store) ListEnrollments(context.Context) ([]model.EnrollmentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.EnrollmentDetail{}
	for _, e := range sortedValues(s.enrollments) {
		out = append(out, s.detail(e))
	}
	return out, nil
}

func (s *Store) GetEnrollmentByID(_ context.Context, id int64) (*model.EnrollmentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	e, ok := s.enrollments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	d := s.detail(e)
	return &d, nil
}

func (s *Store) ExistsByStudentAndCourse(_ context.Context, studentID, courseID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateEnrollment(_ context.Context, e *model.Enrollment) (*model.EnrollmentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.students[e.StudentID]; !ok {
		return nil, foreignKeyViolation("enrollments_student_id_fkey")
	}
	if _, ok := s.courses[e.CourseID]; !ok {
		return nil, foreignKeyViolation("enrollments_course_id_fkey")
	}
	for _, o := range s.enrollments {
		if o.StudentID == e.StudentID && o.CourseID == e.CourseID {
			return nil, uniqueViolation("enrollments", "unique_enrollments_student_course")
		}
	}
	created := *e
	created.ID = s.id()
	created.EnrollmentDate = today()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.enrollments[created.ID] = created
	d := s.detail(created)
	return &d, nil
}

func (s *Store) UpdateEnrollmentGrade(_ context.Context, id int64, grade *string) (*model.EnrollmentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	e, ok := s.enrollments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	e.Grade = grade
	e.UpdatedAt = time.Now()
	s.enrollments[id] = e
	d := s.detail(e)
	return &d, nil
}

func (s *Store) DeleteEnrollment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.enrollments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.enrollments, id)
	return nil
}
