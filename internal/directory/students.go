package directory

import (
	"context"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// StudentRequest is the registration payload.
type StudentRequest struct {
	Name    string `json:"name" validate:"required"`
	College string `json:"college" validate:"required"`
}

const msgStudentRequired = "Name and college required"

// RegisterStudent validates req, assigns a fresh id and appends the student.
// Invalid input is rejected before the collection is touched.
func (s *Service) RegisterStudent(ctx context.Context, req StudentRequest) (domain.Student, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return domain.Student{}, &ValidationError{Message: msgStudentRequired}
	}

	student := domain.Student{
		ID:      s.newID(),
		Name:    req.Name,
		College: req.College,
	}

	err := store.Update(ctx, s.store, store.Students, func(students []domain.Student) ([]domain.Student, error) {
		return append(students, student), nil
	})
	if err != nil {
		return domain.Student{}, err
	}
	return student, nil
}
