package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/testutil"
)

func newScope(t *testing.T) (context.Context, *repositories.Repositories, *repositories.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDatabase(t)
	uow := repositories.NewUnitOfWork(database.DB)
	return repositories.WithUnitOfWork(context.Background(), uow), repositories.NewRepositories(database.DB), uow
}

func newTeacher(first string) *models.Teacher {
	return &models.Teacher{
		FirstName: first,
		LastName:  "Teacher",
		Email:     first + "@example.com",
		HireDate:  time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddIsInvisibleUntilSave(t *testing.T) {
	ctx, repos, uow := newScope(t)

	teacher := newTeacher("anton")
	require.NoError(t, repos.TeacherRepository.Add(ctx, teacher))
	assert.Equal(t, 1, uow.Pending())

	all, err := repos.TeacherRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repos.TeacherRepository.Save(ctx))
	assert.Zero(t, uow.Pending())
	assert.NotZero(t, teacher.ID)

	found, err := repos.TeacherRepository.GetByID(ctx, teacher.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "anton", found.FirstName)
}

func TestGetAllEmptyIsNotNil(t *testing.T) {
	ctx, repos, _ := newScope(t)

	all, err := repos.StudentRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Len(t, all, 0)
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	ctx, repos, _ := newScope(t)

	found, err := repos.CourseRepository.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdateReplacesAllColumns(t *testing.T) {
	ctx, repos, _ := newScope(t)

	email := "s@example.com"
	dob := time.Date(2004, 3, 1, 0, 0, 0, 0, time.UTC)
	student := &models.Student{FirstName: "Ann", LastName: "Lee", Email: &email, DateOfBirth: &dob}
	require.NoError(t, repos.StudentRepository.Add(ctx, student))
	require.NoError(t, repos.StudentRepository.Save(ctx))

	replacement := &models.Student{ID: student.ID, FirstName: "Anna", LastName: "Lee", DateOfBirth: &dob}
	require.NoError(t, repos.StudentRepository.Update(ctx, replacement))
	require.NoError(t, repos.StudentRepository.Save(ctx))

	found, err := repos.StudentRepository.GetByID(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Anna", found.FirstName)
	assert.Nil(t, found.Email)
}

func TestUpdateMissingRowIsNoop(t *testing.T) {
	ctx, repos, _ := newScope(t)

	ghost := newTeacher("ghost")
	ghost.ID = 99
	require.NoError(t, repos.TeacherRepository.Update(ctx, ghost))
	require.NoError(t, repos.TeacherRepository.Save(ctx))

	all, err := repos.TeacherRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteRemovesRow(t *testing.T) {
	ctx, repos, _ := newScope(t)

	teacher := newTeacher("olga")
	require.NoError(t, repos.TeacherRepository.Add(ctx, teacher))
	require.NoError(t, repos.TeacherRepository.Save(ctx))

	require.NoError(t, repos.TeacherRepository.Delete(ctx, teacher))
	require.NoError(t, repos.TeacherRepository.Save(ctx))

	found, err := repos.TeacherRepository.GetByID(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestNilEntityIsMissingArgument(t *testing.T) {
	ctx, repos, uow := newScope(t)

	assert.ErrorIs(t, repos.StudentRepository.Add(ctx, nil), apperrors.ErrMissingArgument)
	assert.ErrorIs(t, repos.StudentRepository.Update(ctx, nil), apperrors.ErrMissingArgument)
	assert.ErrorIs(t, repos.StudentRepository.Delete(ctx, nil), apperrors.ErrMissingArgument)
	assert.Zero(t, uow.Pending())
}

func TestStagingWithoutUnitOfWork(t *testing.T) {
	_, repos, _ := newScope(t)
	ctx := context.Background()

	assert.ErrorIs(t, repos.TeacherRepository.Add(ctx, newTeacher("x")), repositories.ErrNoUnitOfWork)
	assert.ErrorIs(t, repos.TeacherRepository.Save(ctx), repositories.ErrNoUnitOfWork)
	assert.ErrorIs(t, repos.EnrollmentRepository.Enroll(ctx, 1, 1), repositories.ErrNoUnitOfWork)
}

func TestSaveIsAtomic(t *testing.T) {
	ctx, repos, uow := newScope(t)

	require.NoError(t, repos.TeacherRepository.Add(ctx, newTeacher("kept")))
	require.NoError(t, repos.CourseRepository.Add(ctx, &models.Course{CourseName: "Orphan", TeacherID: 12345}))

	err := repos.CourseRepository.Save(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.Zero(t, uow.Pending())

	teachers, err := repos.TeacherRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, teachers)
}

func TestSaveWithNothingStaged(t *testing.T) {
	ctx, repos, _ := newScope(t)
	assert.NoError(t, repos.StudentRepository.Save(ctx))
}

func TestEnrollmentRepository(t *testing.T) {
	ctx, repos, _ := newScope(t)

	teacher := newTeacher("anton")
	require.NoError(t, repos.TeacherRepository.Add(ctx, teacher))
	require.NoError(t, repos.TeacherRepository.Save(ctx))

	math := &models.Course{CourseName: "Math", TeacherID: teacher.ID}
	english := &models.Course{CourseName: "English", TeacherID: teacher.ID}
	require.NoError(t, repos.CourseRepository.Add(ctx, math))
	require.NoError(t, repos.CourseRepository.Add(ctx, english))

	dob := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
	student := &models.Student{FirstName: "Ann", LastName: "Lee", DateOfBirth: &dob}
	require.NoError(t, repos.StudentRepository.Add(ctx, student))
	require.NoError(t, repos.StudentRepository.Save(ctx))

	require.NoError(t, repos.EnrollmentRepository.Enroll(ctx, english.ID, student.ID))
	require.NoError(t, repos.EnrollmentRepository.Enroll(ctx, math.ID, student.ID))
	require.NoError(t, repos.StudentRepository.Save(ctx))

	count, err := repos.EnrollmentRepository.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	ids, err := repos.EnrollmentRepository.CourseIDsForStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{math.ID, english.ID}, ids)
}

func TestEnrollUnknownStudentViolatesConstraint(t *testing.T) {
	ctx, repos, _ := newScope(t)

	require.NoError(t, repos.EnrollmentRepository.Enroll(ctx, 1, 1))
	err := repos.StudentRepository.Save(ctx)
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.ErrorContains(t, err, "(foreign key)")
}
