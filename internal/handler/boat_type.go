package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/IsabelaBoudoux/Sail1/internal/service"
	"github.com/gin-gonic/gin"
)

type BoatTypeHandler struct {
	boatTypes *service.BoatTypeService
}

func NewBoatTypeHandler(boatTypes *service.BoatTypeService) *BoatTypeHandler {
	return &BoatTypeHandler{boatTypes: boatTypes}
}

// GET /boat-types
func (h *BoatTypeHandler) Index(c *gin.Context) {
	boatTypes, err := h.boatTypes.List()
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, http.StatusOK, "boattype_index.html", gin.H{
		"Title": "Boat Types",
		"Items": boatTypes,
	})
}

// GET /boat-types/:id
func (h *BoatTypeHandler) Details(c *gin.Context) {
	boatType, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "boattype_detail.html", gin.H{
		"Title": boatType.Name,
		"Item":  boatType,
	})
}

// GET /boat-types/new
func (h *BoatTypeHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &model.BoatType{}, "/boat-types", nil)
}

// POST /boat-types
func (h *BoatTypeHandler) Create(c *gin.Context) {
	var boatType model.BoatType
	if err := c.ShouldBind(&boatType); err != nil {
		h.renderForm(c, http.StatusBadRequest, &boatType, "/boat-types", fieldErrors(err))
		return
	}
	if err := h.boatTypes.Create(&boatType); err != nil {
		internalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/boat-types")
}

// GET /boat-types/:id/edit
func (h *BoatTypeHandler) Edit(c *gin.Context) {
	boatType, ok := h.fetch(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, boatType, fmt.Sprintf("/boat-types/%d/edit", boatType.BoatTypeID), nil)
}

// POST /boat-types/:id/edit
func (h *BoatTypeHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	var boatType model.BoatType
	if err := c.ShouldBind(&boatType); err != nil {
		h.renderForm(c, http.StatusBadRequest, &boatType, fmt.Sprintf("/boat-types/%d/edit", id), fieldErrors(err))
		return
	}
	if err := h.boatTypes.Update(id, &boatType); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/boat-types")
}

// GET /boat-types/:id/delete
func (h *BoatTypeHandler) Delete(c *gin.Context) {
	boatType, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "boattype_delete.html", gin.H{
		"Title": "Delete Boat Type",
		"Item":  boatType,
	})
}

// POST /boat-types/:id/delete
func (h *BoatTypeHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	if err := h.boatTypes.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/boat-types")
}

func (h *BoatTypeHandler) fetch(c *gin.Context) (*model.BoatType, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return nil, false
	}
	boatType, err := h.boatTypes.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return nil, false
	}
	return boatType, true
}

func (h *BoatTypeHandler) renderForm(c *gin.Context, status int, boatType *model.BoatType, action string, errs map[string]string) {
	render(c, status, "boattype_form.html", gin.H{
		"Title":  "Boat Type",
		"Item":   boatType,
		"Action": action,
		"Errors": errs,
	})
}
