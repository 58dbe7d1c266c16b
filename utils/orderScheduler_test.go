package utils

import (
	"testing"

	"learnhub/database"
	courseModels "learnhub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactSortOrders(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)

	course := courseModels.Course{Title: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)

	late := courseModels.Section{CourseID: course.ID, Title: "Late", Order: 7}
	early := courseModels.Section{CourseID: course.ID, Title: "Early", Order: 3}
	require.NoError(t, db.Create(&late).Error)
	require.NoError(t, db.Create(&early).Error)

	lesson := courseModels.Lesson{ContentBase: courseModels.ContentBase{SectionID: early.ID, Title: "A", SortOrder: 4}}
	quiz := courseModels.Quiz{ContentBase: courseModels.ContentBase{SectionID: early.ID, Title: "B", SortOrder: 9}}
	task := courseModels.Assignment{ContentBase: courseModels.ContentBase{SectionID: early.ID, Title: "C", SortOrder: 2}}
	require.NoError(t, db.Create(&lesson).Error)
	require.NoError(t, db.Create(&quiz).Error)
	require.NoError(t, db.Create(&task).Error)

	changed, err := CompactSortOrders(db)
	require.NoError(t, err)
	assert.Equal(t, 5, changed)

	var sections []courseModels.Section
	require.NoError(t, db.Order("order_index asc").Find(&sections).Error)
	require.Len(t, sections, 2)
	assert.Equal(t, early.ID, sections[0].ID)
	assert.Equal(t, 0, sections[0].Order)
	assert.Equal(t, 1, sections[1].Order)

	refs, err := courseModels.SectionItems(db, early.ID)
	require.NoError(t, err)
	assert.Equal(t, []courseModels.ItemRef{
		{ID: task.ID, Type: courseModels.KindAssignment, SortOrder: 0},
		{ID: lesson.ID, Type: courseModels.KindLesson, SortOrder: 1},
		{ID: quiz.ID, Type: courseModels.KindQuiz, SortOrder: 2},
	}, refs)

	// Already dense data is left alone
	changed, err = CompactSortOrders(db)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestInitializeOrderSchedulerRejectsBadSpec(t *testing.T) {
	_, err := InitializeOrderScheduler("not a cron line")
	assert.Error(t, err)

	c, err := InitializeOrderScheduler("0 3 * * *")
	require.NoError(t, err)
	c.Stop()
}
