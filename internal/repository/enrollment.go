package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/student-records/internal/model"
	"github.com/jackc/pgx/v5"
)

// enrollmentDetailSelect joins an enrollment row set named "e" with the
// student and course names.
const enrollmentDetailSelect = `
	SELECT e.id, e.student_id, e.course_id, e.enrollment_date, e.grade, e.created_at, e.updated_at,
		s.name AS student_name,
		c.name AS course_name
`

const enrollmentDetailJoins = `
	JOIN students s ON s.id = e.student_id
	JOIN courses c ON c.id = e.course_id
`

type EnrollmentRepository struct {
	db Querier
}

func NewEnrollmentRepository(db Querier) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) ListEnrollments(ctx context.Context) ([]model.EnrollmentDetail, error) {
	stmt := enrollmentDetailSelect + ` FROM enrollments e ` + enrollmentDetailJoins + ` ORDER BY e.id`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list enrollments query: %w", err)
	}

	enrollments, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.EnrollmentDetail])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:enrollments: %w", err)
	}

	return enrollments, nil
}

func (r *EnrollmentRepository) GetEnrollmentByID(ctx context.Context, id int64) (*model.EnrollmentDetail, error) {
	stmt := enrollmentDetailSelect + ` FROM enrollments e ` + enrollmentDetailJoins + ` WHERE e.id = @id`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get enrollment query for id=%d: %w", id, err)
	}

	enrollment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EnrollmentDetail])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:enrollments for id=%d: %w", id, err)
	}

	return &enrollment, nil
}

func (r *EnrollmentRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM enrollments WHERE student_id = @student_id AND course_id = @course_id)`,
		pgx.NamedArgs{"student_id": studentID, "course_id": courseID},
	)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment student=%d course=%d: %w", studentID, courseID, err)
	}
	return found, nil
}

func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, e *model.Enrollment) (*model.EnrollmentDetail, error) {
	stmt := `
		WITH e AS (
			INSERT INTO enrollments (student_id, course_id, grade)
			VALUES (@student_id, @course_id, @grade)
			RETURNING *
		)
	` + enrollmentDetailSelect + ` FROM e ` + enrollmentDetailJoins

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"student_id": e.StudentID,
		"course_id":  e.CourseID,
		"grade":      e.Grade,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create enrollment query student=%d course=%d: %w", e.StudentID, e.CourseID, err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EnrollmentDetail])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:enrollments student=%d course=%d: %w", e.StudentID, e.CourseID, err)
	}

	return &created, nil
}

func (r *EnrollmentRepository) UpdateEnrollmentGrade(ctx context.Context, id int64, grade *string) (*model.EnrollmentDetail, error) {
	stmt := `
		WITH e AS (
			UPDATE enrollments
			SET grade = @grade,
				updated_at = NOW()
			WHERE id = @id
			RETURNING *
		)
	` + enrollmentDetailSelect + ` FROM e ` + enrollmentDetailJoins

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"id": id, "grade": grade})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update enrollment query for id=%d: %w", id, err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EnrollmentDetail])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:enrollments for id=%d: %w", id, err)
	}

	return &updated, nil
}

func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM enrollments WHERE id = @id`, id); err != nil {
		return fmt.Errorf("failed to delete enrollment id=%d: %w", id, err)
	}
	return nil
}
