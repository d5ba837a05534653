package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/IsabelaBoudoux/Sail1/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for the selected-member context carried across the
// membership pages.
const (
	sessionMemberID   = "memberId"
	sessionMemberName = "memberName"
)

type MembershipHandler struct {
	memberships *service.MembershipService
	members     *service.MemberService
	refs        *service.ReferenceService
}

func NewMembershipHandler(memberships *service.MembershipService, members *service.MemberService, refs *service.ReferenceService) *MembershipHandler {
	return &MembershipHandler{memberships: memberships, members: members, refs: refs}
}

// memberContext is the selected member whose memberships are being
// worked on. It is resolved per request, not read ambiently.
type memberContext struct {
	ID   uint
	Name string
}

// resolveMemberContext finds the selected member: a memberId query
// parameter always wins and is persisted to the session; otherwise the
// session value from an earlier visit is used. Without either, the
// membership pages have nothing to show and the caller should bounce
// the user to the member list. The member name comes from the query if
// supplied, else from the members table, and the resolved value is
// written back to the session either way.
func (h *MembershipHandler) resolveMemberContext(c *gin.Context) (memberContext, bool) {
	sess := sessions.Default(c)
	var ctx memberContext

	if q := c.Query("memberId"); q != "" {
		if id, ok := parseID(q); ok {
			ctx.ID = id
			sess.Set(sessionMemberID, q)
		}
	} else if v := sess.Get(sessionMemberID); v != nil {
		if s, ok := v.(string); ok {
			if id, ok := parseID(s); ok {
				ctx.ID = id
			}
		}
	}
	if ctx.ID == 0 {
		setFlash(c, "Please, select a member to see their membership")
		return ctx, false
	}

	if name := c.Query("memberName"); name != "" {
		ctx.Name = name
	} else if member, err := h.members.Get(ctx.ID); err == nil {
		ctx.Name = member.FullName
	}
	sess.Set(sessionMemberName, ctx.Name)
	_ = sess.Save()
	return ctx, true
}

// GET /memberships
func (h *MembershipHandler) Index(c *gin.Context) {
	ctx, ok := h.resolveMemberContext(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/members")
		return
	}
	memberships, err := h.memberships.ListForMember(ctx.ID)
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, http.StatusOK, "membership_index.html", gin.H{
		"Title":      "Memberships",
		"MemberName": ctx.Name,
		"MemberID":   ctx.ID,
		"Items":      memberships,
	})
}

// GET /memberships/:id
func (h *MembershipHandler) Details(c *gin.Context) {
	membership, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "membership_detail.html", gin.H{
		"Title": "Membership",
		"Item":  membership,
	})
}

// GET /memberships/new
func (h *MembershipHandler) New(c *gin.Context) {
	ctx, ok := h.resolveMemberContext(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/members")
		return
	}
	membership := &model.Membership{MemberID: ctx.ID, Year: time.Now().Year()}
	h.renderForm(c, http.StatusOK, membership, "/memberships", nil)
}

// POST /memberships
func (h *MembershipHandler) Create(c *gin.Context) {
	var membership model.Membership
	if err := c.ShouldBind(&membership); err != nil {
		h.renderForm(c, http.StatusBadRequest, &membership, "/memberships", fieldErrors(err))
		return
	}
	if err := h.memberships.Create(&membership); err != nil {
		// A missing fee structure or membership type must surface as a
		// failure, never as a zero-fee membership.
		internalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/memberships")
}

// GET /memberships/:id/edit
func (h *MembershipHandler) Edit(c *gin.Context) {
	membership, ok := h.fetch(c)
	if !ok {
		return
	}
	if !service.CanEditYear(membership.Year, time.Now().Year()) {
		setFlash(c, "You cannot edit previous year's membership records!")
		c.Redirect(http.StatusSeeOther, "/memberships")
		return
	}
	h.renderForm(c, http.StatusOK, membership, fmt.Sprintf("/memberships/%d/edit", membership.MembershipID), nil)
}

// POST /memberships/:id/edit
func (h *MembershipHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	var membership model.Membership
	if err := c.ShouldBind(&membership); err != nil {
		h.renderForm(c, http.StatusBadRequest, &membership, fmt.Sprintf("/memberships/%d/edit", id), fieldErrors(err))
		return
	}
	if err := h.memberships.Update(id, &membership); err != nil {
		switch {
		case errors.Is(err, service.ErrEditBlocked):
			setFlash(c, "You cannot edit previous year's membership records!")
			c.Redirect(http.StatusSeeOther, "/memberships")
		case errors.Is(err, service.ErrNotFound):
			notFound(c)
		default:
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/memberships")
}

// GET /memberships/:id/delete
func (h *MembershipHandler) Delete(c *gin.Context) {
	membership, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "membership_delete.html", gin.H{
		"Title": "Delete Membership",
		"Item":  membership,
	})
}

// POST /memberships/:id/delete
func (h *MembershipHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	if err := h.memberships.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/memberships")
}

func (h *MembershipHandler) fetch(c *gin.Context) (*model.Membership, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return nil, false
	}
	membership, err := h.memberships.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return nil, false
	}
	return membership, true
}

func (h *MembershipHandler) renderForm(c *gin.Context, status int, membership *model.Membership, action string, errs map[string]string) {
	types, err := h.refs.MembershipTypes()
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, status, "membership_form.html", gin.H{
		"Title":           "Membership",
		"Item":            membership,
		"Action":          action,
		"MembershipTypes": types,
		"Errors":          errs,
	})
}
