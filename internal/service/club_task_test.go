package service

import (
	"testing"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubTaskListSortedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewClubTaskService(db)

	for _, name := range []string{"Race Committee", "Dock Duty", "Sail Camp"} {
		require.NoError(t, svc.Create(&model.ClubTask{Name: name}))
	}

	tasks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Dock Duty", tasks[0].Name)
	assert.Equal(t, "Sail Camp", tasks[2].Name)
}

func TestClubTaskDeleteTwiceReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewClubTaskService(db)

	task := &model.ClubTask{Name: "Dock Duty"}
	require.NoError(t, svc.Create(task))

	require.NoError(t, svc.Delete(task.TaskID))
	assert.ErrorIs(t, svc.Delete(task.TaskID), ErrNotFound)
}
