package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/student-records/internal/model"
	"github.com/jackc/pgx/v5"
)

const studentColumns = `id, student_id, name, email, phone, date_of_birth, address, enrollment_date, created_at, updated_at`

type StudentRepository struct {
	db Querier
}

func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) ListStudents(ctx context.Context) ([]model.Student, error) {
	stmt := `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list students query: %w", err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:students: %w", err)
	}

	return students, nil
}

func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*model.Student, error) {
	stmt := `SELECT ` + studentColumns + ` FROM students WHERE id = @id`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get student query for id=%d: %w", id, err)
	}

	student, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:students for id=%d: %w", id, err)
	}

	return &student, nil
}

func (r *StudentRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM students WHERE student_id = @student_id)`,
		pgx.NamedArgs{"student_id": studentID},
	)
	if err != nil {
		return false, fmt.Errorf("failed to check student_id=%s: %w", studentID, err)
	}
	return found, nil
}

func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM students WHERE email = @email)`,
		pgx.NamedArgs{"email": email},
	)
	if err != nil {
		return false, fmt.Errorf("failed to check email=%s: %w", email, err)
	}
	return found, nil
}

// CreateStudent inserts s. The enrollment date is set by the database.
func (r *StudentRepository) CreateStudent(ctx context.Context, s *model.Student) (*model.Student, error) {
	stmt := `
		INSERT INTO students (student_id, name, email, phone, date_of_birth, address)
		VALUES (@student_id, @name, @email, @phone, @date_of_birth, @address)
		RETURNING ` + studentColumns

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"student_id":    s.StudentID,
		"name":          s.Name,
		"email":         s.Email,
		"phone":         s.Phone,
		"date_of_birth": s.DateOfBirth,
		"address":       s.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create student query for student_id=%s: %w", s.StudentID, err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:students for student_id=%s: %w", s.StudentID, err)
	}

	return &created, nil
}

// UpdateStudent overwrites every mutable column of s.ID.
func (r *StudentRepository) UpdateStudent(ctx context.Context, s *model.Student) (*model.Student, error) {
	stmt := `
		UPDATE students
		SET student_id = @student_id,
			name = @name,
			email = @email,
			phone = @phone,
			date_of_birth = @date_of_birth,
			address = @address,
			updated_at = NOW()
		WHERE id = @id
		RETURNING ` + studentColumns

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"id":            s.ID,
		"student_id":    s.StudentID,
		"name":          s.Name,
		"email":         s.Email,
		"phone":         s.Phone,
		"date_of_birth": s.DateOfBirth,
		"address":       s.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update student query for id=%d: %w", s.ID, err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:students for id=%d: %w", s.ID, err)
	}

	return &updated, nil
}

// DeleteStudent removes the student. Enrollments go with it.
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM students WHERE id = @id`, id); err != nil {
		return fmt.Errorf("failed to delete student id=%d: %w", id, err)
	}
	return nil
}

// ListStudentCourses returns the courses the student is enrolled in.
func (r *StudentRepository) ListStudentCourses(ctx context.Context, id int64) ([]model.Course, error) {
	stmt := `
		SELECT c.id, c.course_code, c.name, c.description, c.credits, c.instructor, c.semester, c.created_at, c.updated_at
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.student_id = @id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list courses query for student id=%d: %w", id, err)
	}

	courses, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Course])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:courses for student id=%d: %w", id, err)
	}

	return courses, nil
}
