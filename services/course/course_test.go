package course

import (
	"context"
	"testing"

	"campusportal/database/repository"
	"campusportal/database/repository/memory"
	"campusportal/models"
	"campusportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseCodesAreNormalisedAndUnique(t *testing.T) {
	svc := NewDefaultCourseService(memory.NewCourseRepo())
	ctx := context.Background()

	c, err := svc.CreateCourse(ctx, models.CourseInput{Code: " cs101", Name: "Intro"})
	require.NoError(t, err)
	assert.Equal(t, "CS101", c.Code)

	_, err = svc.CreateCourse(ctx, models.CourseInput{Code: "CS101", Name: "Again"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	_, err = svc.CreateCourse(ctx, models.CourseInput{Code: "MA101"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	other, err := svc.CreateCourse(ctx, models.CourseInput{Code: "MA101", Name: "Calculus"})
	require.NoError(t, err)
	_, err = svc.UpdateCourse(ctx, other.ID, models.CourseInput{Code: "cs101", Name: "Calculus"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	all, err := svc.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CS101", all[0].Code)

	require.NoError(t, svc.DeleteCourse(ctx, c.ID))
	assert.ErrorIs(t, svc.DeleteCourse(ctx, c.ID), repository.ErrNotFound)
}
