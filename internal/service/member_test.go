package service

import (
	"testing"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberListSortedByFullName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	for _, name := range []string{"Shaw, Zoe", "Adams, Bert", "Miller, Kim"} {
		require.NoError(t, svc.Create(&model.Member{FullName: name}))
	}

	members, err := svc.List()
	require.NoError(t, err)
	require.Len(t, members, 3)
	for i := 1; i < len(members); i++ {
		assert.LessOrEqual(t, members[i-1].FullName, members[i].FullName)
	}
}

func TestMemberGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberUpdateKeyMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	member := &model.Member{FullName: "Adams, Bert"}
	require.NoError(t, svc.Create(member))

	// The route key never matches the submitted record's key, so this
	// must fail whether or not the routed row exists.
	stray := &model.Member{MemberID: member.MemberID + 1, FullName: "Adams, Bert", Version: 1}
	assert.ErrorIs(t, svc.Update(member.MemberID, stray), ErrNotFound)
}

func TestMemberUpdateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	member := &model.Member{FullName: "Adams, Bert"}
	require.NoError(t, svc.Create(member))

	// Two browser tabs load the same edit form.
	first, err := svc.Get(member.MemberID)
	require.NoError(t, err)
	second, err := svc.Get(member.MemberID)
	require.NoError(t, err)

	first.City = "Halifax"
	require.NoError(t, svc.Update(first.MemberID, first))

	second.City = "Kingston"
	assert.ErrorIs(t, svc.Update(second.MemberID, second), ErrConflict)

	// If the row vanishes before the loser retries, the conflict
	// resolves to NotFound instead.
	require.NoError(t, svc.Delete(member.MemberID))
	assert.ErrorIs(t, svc.Update(second.MemberID, second), ErrNotFound)
}

func TestMemberDeleteTwiceReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	member := &model.Member{FullName: "Adams, Bert"}
	require.NoError(t, svc.Create(member))

	require.NoError(t, svc.Delete(member.MemberID))
	assert.ErrorIs(t, svc.Delete(member.MemberID), ErrNotFound)
}
