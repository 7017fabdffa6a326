package seed

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appRepos "github.com/yigit/university/internal/app/repositories"
	"github.com/yigit/university/internal/testutil"
)

func TestInitializeSeedsEmptyDatabase(t *testing.T) {
	database := testutil.NewTestDatabase(t)
	repos := appRepos.NewRepositories(database.DB)
	ctx := context.Background()

	require.NoError(t, Initialize(ctx, database.DB, repos, rand.New(rand.NewSource(1)), zerolog.Nop()))

	teachers, err := repos.TeacherRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "anton.skochulyas@gmail.com", teachers[0].Email)
	assert.Equal(t, "olga.melnychuk@gmail.com", teachers[1].Email)
	assert.True(t, teachers[0].HireDate.Before(teachers[1].HireDate))

	courses, err := repos.CourseRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Math", courses[0].CourseName)
	assert.Equal(t, teachers[0].ID, courses[0].TeacherID)
	assert.Equal(t, "English", courses[1].CourseName)
	assert.Equal(t, teachers[1].ID, courses[1].TeacherID)

	students, err := repos.StudentRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, students, 10)

	twentyYearsAgo := time.Now().AddDate(-20, 0, 0)
	for i, s := range students {
		assert.Equal(t, "Student"+string(rune('0'+i)), s.FirstName)
		require.NotNil(t, s.Email)
		require.NotNil(t, s.DateOfBirth)
		offset := s.DateOfBirth.Sub(twentyYearsAgo)
		assert.LessOrEqual(t, offset, 1001*24*time.Hour)
		assert.GreaterOrEqual(t, offset, -1001*24*time.Hour)

		ids, err := repos.EnrollmentRepository.CourseIDsForStudent(ctx, s.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(ids), 1)
	}

	count, err := repos.EnrollmentRepository.Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(0))
	assert.LessOrEqual(t, count, int64(10))
}

func TestInitializeIsIdempotent(t *testing.T) {
	database := testutil.NewTestDatabase(t)
	repos := appRepos.NewRepositories(database.DB)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	require.NoError(t, Initialize(ctx, database.DB, repos, rng, zerolog.Nop()))
	before, err := repos.EnrollmentRepository.Count(ctx)
	require.NoError(t, err)

	require.NoError(t, Initialize(ctx, database.DB, repos, rng, zerolog.Nop()))

	teachers, err := repos.TeacherRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, teachers, 2)

	students, err := repos.StudentRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 10)

	after, err := repos.EnrollmentRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
