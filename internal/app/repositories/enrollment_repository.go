package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

const enrollmentTable = "course_students"

// EnrollmentRepository works on the course/student join table
type EnrollmentRepository struct {
	db *gorm.DB
	// gorm rewrites "?" into the dialect's bind variables
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Enroll stages an association between a course and a student
func (r *EnrollmentRepository) Enroll(ctx context.Context, courseID, studentID int64) error {
	sql, args, err := r.sb.Insert(enrollmentTable).
		Columns("course_id", "student_id").
		Values(courseID, studentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build enroll query: %w", err)
	}
	return r.stage(ctx, "insert Enrollment", sql, args)
}

// Count returns the total number of associations
func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(enrollmentTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&count).Error; err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// CourseIDsForStudent lists the courses a student is enrolled in
func (r *EnrollmentRepository) CourseIDsForStudent(ctx context.Context, studentID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("course_id").
		From(enrollmentTable).
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrollment query: %w", err)
	}

	ids := []int64{}
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&ids).Error; err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	return ids, nil
}

func (r *EnrollmentRepository) stage(ctx context.Context, name, sql string, args []interface{}) error {
	uow, ok := UnitOfWorkFrom(ctx)
	if !ok {
		return ErrNoUnitOfWork
	}
	uow.stage(name, func(tx *gorm.DB) error {
		return tx.Exec(sql, args...).Error
	})
	return nil
}
