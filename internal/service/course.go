package service

import (
	"context"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/rs/zerolog"
)

type CourseService struct {
	courses CourseRepository
}

func NewCourseService(courses CourseRepository) *CourseService {
	return &CourseService{courses: courses}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]model.CourseResponse, error) {
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return model.CoursesToResponse(courses), nil
}

func (s *CourseService) GetCourse(ctx context.Context, id int64) (*model.CourseResponse, error) {
	course, err := s.courses.GetCourseByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errCourseNotFound)
	}
	resp := course.ToResponse()
	return &resp, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.CourseResponse, error) {
	if err := s.ensureUnique(ctx, req.CourseCode); err != nil {
		return nil, err
	}

	course, err := s.courses.CreateCourse(ctx, &model.Course{
		CourseCode:  req.CourseCode,
		Name:        req.Name,
		Description: req.Description,
		Credits:     *req.Credits,
		Instructor:  req.Instructor,
		Semester:    req.Semester,
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("course_pk", course.ID).
		Str("course_code", course.CourseCode).
		Msg("course created")

	resp := course.ToResponse()
	return &resp, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, req *model.UpdateCourseRequest) (*model.CourseResponse, error) {
	course, err := s.courses.GetCourseByID(ctx, req.ID)
	if err != nil {
		return nil, notFound(err, errCourseNotFound)
	}

	if req.IsEmpty() {
		return nil, errNoDataProvided()
	}

	if req.CourseCode != nil && *req.CourseCode != course.CourseCode {
		if err := s.ensureUnique(ctx, *req.CourseCode); err != nil {
			return nil, err
		}
		course.CourseCode = *req.CourseCode
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Instructor != nil {
		course.Instructor = req.Instructor
	}
	if req.Semester != nil {
		course.Semester = req.Semester
	}

	updated, err := s.courses.UpdateCourse(ctx, course)
	if err != nil {
		return nil, notFound(err, errCourseNotFound)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.courses.DeleteCourse(ctx, id); err != nil {
		return nil, notFound(err, errCourseNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("course_pk", id).Msg("course deleted")

	return &model.MessageResponse{Message: "Course deleted successfully"}, nil
}

func (s *CourseService) ListCourseStudents(ctx context.Context, id int64) ([]model.StudentResponse, error) {
	if _, err := s.courses.GetCourseByID(ctx, id); err != nil {
		return nil, notFound(err, errCourseNotFound)
	}

	students, err := s.courses.ListCourseStudents(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.StudentsToResponse(students), nil
}

func (s *CourseService) ensureUnique(ctx context.Context, code string) error {
	taken, err := s.courses.ExistsByCourseCode(ctx, code)
	if err != nil {
		return err
	}
	if taken {
		return errConflict("Course code already exists", errs.CodeCourseCodeExists)
	}
	return nil
}
