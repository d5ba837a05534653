package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCreateAndList(t *testing.T) {
	r, _ := newTestApp(t)

	w := doPost(r, "/members", url.Values{
		"fullName":     {"Adams, Bert"},
		"firstName":    {"Bert"},
		"lastName":     {"Adams"},
		"provinceCode": {"ON"},
		"email":        {"bert@example.com"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/members", w.Header().Get("Location"))

	list := doGet(r, "/members", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Adams, Bert")
}

func TestMemberCreateValidationFailureRedisplaysForm(t *testing.T) {
	r, db := newTestApp(t)

	w := doPost(r, "/members", url.Values{
		"firstName": {"Bert"},
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMemberDetailNotFound(t *testing.T) {
	r, _ := newTestApp(t)

	w := doGet(r, "/members/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemberDeleteTwice(t *testing.T) {
	r, db := newTestApp(t)

	member := model.Member{FullName: "Adams, Bert", Version: 1}
	require.NoError(t, db.Create(&member).Error)

	first := doPost(r, "/members/1/delete", url.Values{}, nil)
	require.Equal(t, http.StatusSeeOther, first.Code)

	second := doPost(r, "/members/1/delete", url.Values{}, nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
}
