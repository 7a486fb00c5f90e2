package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/student-records/internal/model"
	"github.com/jackc/pgx/v5"
)

const courseColumns = `id, course_code, name, description, credits, instructor, semester, created_at, updated_at`

type CourseRepository struct {
	db Querier
}

func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) ListCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list courses query: %w", err)
	}

	courses, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Course])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:courses: %w", err)
	}

	return courses, nil
}

func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	rows, err := r.db.Query(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get course query for id=%d: %w", id, err)
	}

	course, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Course])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:courses for id=%d: %w", id, err)
	}

	return &course, nil
}

func (r *CourseRepository) ExistsByCourseCode(ctx context.Context, code string) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM courses WHERE course_code = @course_code)`,
		pgx.NamedArgs{"course_code": code},
	)
	if err != nil {
		return false, fmt.Errorf("failed to check course_code=%s: %w", code, err)
	}
	return found, nil
}

func (r *CourseRepository) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	stmt := `
		INSERT INTO courses (course_code, name, description, credits, instructor, semester)
		VALUES (@course_code, @name, @description, @credits, @instructor, @semester)
		RETURNING ` + courseColumns

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"course_code": c.CourseCode,
		"name":        c.Name,
		"description": c.Description,
		"credits":     c.Credits,
		"instructor":  c.Instructor,
		"semester":    c.Semester,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create course query for course_code=%s: %w", c.CourseCode, err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Course])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:courses for course_code=%s: %w", c.CourseCode, err)
	}

	return &created, nil
}

func (r *CourseRepository) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	stmt := `
		UPDATE courses
		SET course_code = @course_code,
			name = @name,
			description = @description,
			credits = @credits,
			instructor = @instructor,
			semester = @semester,
			updated_at = NOW()
		WHERE id = @id
		RETURNING ` + courseColumns

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"id":          c.ID,
		"course_code": c.CourseCode,
		"name":        c.Name,
		"description": c.Description,
		"credits":     c.Credits,
		"instructor":  c.Instructor,
		"semester":    c.Semester,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update course query for id=%d: %w", c.ID, err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Course])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:courses for id=%d: %w", c.ID, err)
	}

	return &updated, nil
}

// DeleteCourse removes the course. Enrollments go with it.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM courses WHERE id = @id`, id); err != nil {
		return fmt.Errorf("failed to delete course id=%d: %w", id, err)
	}
	return nil
}

// ListCourseStudents returns the students enrolled in the course.
func (r *CourseRepository) ListCourseStudents(ctx context.Context, id int64) ([]model.Student, error) {
	stmt := `
		SELECT s.id, s.student_id, s.name, s.email, s.phone, s.date_of_birth, s.address, s.enrollment_date, s.created_at, s.updated_at
		FROM students s
		JOIN enrollments e ON e.student_id = s.id
		WHERE e.course_id = @id
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list students query for course id=%d: %w", id, err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:students for course id=%d: %w", id, err)
	}

	return students, nil
}
