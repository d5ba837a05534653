package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/IsabelaBoudoux/Sail1/internal/service"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members *service.MemberService
	refs    *service.ReferenceService
}

func NewMemberHandler(members *service.MemberService, refs *service.ReferenceService) *MemberHandler {
	return &MemberHandler{members: members, refs: refs}
}

// GET /members
func (h *MemberHandler) Index(c *gin.Context) {
	members, err := h.members.List()
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, http.StatusOK, "member_index.html", gin.H{
		"Title": "Members",
		"Items": members,
	})
}

// GET /members/:id
func (h *MemberHandler) Details(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	member, err := h.members.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	render(c, http.StatusOK, "member_detail.html", gin.H{
		"Title": member.FullName,
		"Item":  member,
	})
}

// GET /members/new
func (h *MemberHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &model.Member{}, "/members", nil)
}

// POST /members
func (h *MemberHandler) Create(c *gin.Context) {
	var member model.Member
	if err := c.ShouldBind(&member); err != nil {
		h.renderForm(c, http.StatusBadRequest, &member, "/members", fieldErrors(err))
		return
	}
	if err := h.members.Create(&member); err != nil {
		internalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/members")
}

// GET /members/:id/edit
func (h *MemberHandler) Edit(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	member, err := h.members.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	h.renderForm(c, http.StatusOK, member, fmt.Sprintf("/members/%d/edit", id), nil)
}

// POST /members/:id/edit
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	var member model.Member
	if err := c.ShouldBind(&member); err != nil {
		h.renderForm(c, http.StatusBadRequest, &member, fmt.Sprintf("/members/%d/edit", id), fieldErrors(err))
		return
	}
	if err := h.members.Update(id, &member); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/members")
}

// GET /members/:id/delete
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	member, err := h.members.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	render(c, http.StatusOK, "member_delete.html", gin.H{
		"Title": "Delete Member",
		"Item":  member,
	})
}

// POST /members/:id/delete
func (h *MemberHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	if err := h.members.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/members")
}

func (h *MemberHandler) renderForm(c *gin.Context, status int, member *model.Member, action string, errs map[string]string) {
	provinces, err := h.refs.Provinces()
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, status, "member_form.html", gin.H{
		"Title":     "Member",
		"Item":      member,
		"Action":    action,
		"Provinces": provinces,
		"Errors":    errs,
	})
}
