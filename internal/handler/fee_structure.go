package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/IsabelaBoudoux/Sail1/internal/service"
	"github.com/gin-gonic/gin"
)

type FeeStructureHandler struct {
	fees *service.FeeStructureService
}

func NewFeeStructureHandler(fees *service.FeeStructureService) *FeeStructureHandler {
	return &FeeStructureHandler{fees: fees}
}

// GET /fees
func (h *FeeStructureHandler) Index(c *gin.Context) {
	fees, err := h.fees.List()
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, http.StatusOK, "feestructure_index.html", gin.H{
		"Title": "Annual Fee Structures",
		"Items": fees,
	})
}

// GET /fees/:year
func (h *FeeStructureHandler) Details(c *gin.Context) {
	fee, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "feestructure_detail.html", gin.H{
		"Title": fmt.Sprintf("Fees for %d", fee.Year),
		"Item":  fee,
	})
}

// GET /fees/new
//
// The form is pre-filled from the most recent season so the treasurer
// only adjusts what changed. This is a convenience, not a guard: any
// year the form submits is accepted by Create.
func (h *FeeStructureHandler) New(c *gin.Context) {
	template, err := h.fees.Latest()
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			internalError(c, err)
			return
		}
		template = &model.FeeStructure{Year: time.Now().Year()}
	}
	h.renderForm(c, http.StatusOK, template, "/fees", nil)
}

// POST /fees
func (h *FeeStructureHandler) Create(c *gin.Context) {
	var fee model.FeeStructure
	if err := c.ShouldBind(&fee); err != nil {
		h.renderForm(c, http.StatusBadRequest, &fee, "/fees", fieldErrors(err))
		return
	}
	if err := h.fees.Create(&fee); err != nil {
		// Most likely a duplicate year; show it on the form like any
		// other input problem instead of a hard failure.
		h.renderForm(c, http.StatusBadRequest, &fee, "/fees", map[string]string{
			"": "error while saving annual fee structure: " + err.Error(),
		})
		return
	}
	setFlash(c, fmt.Sprintf("Record added for year %d", fee.Year))
	c.Redirect(http.StatusSeeOther, "/fees")
}

// GET /fees/:year/edit
func (h *FeeStructureHandler) Edit(c *gin.Context) {
	year, ok := parseYear(c.Param("year"))
	if !ok {
		notFound(c)
		return
	}
	if !service.CanEditYear(year, time.Now().Year()) {
		setFlash(c, "You cannot edit annual fees from previous years!")
		c.Redirect(http.StatusSeeOther, "/fees")
		return
	}
	fee, err := h.fees.Get(year)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	h.renderForm(c, http.StatusOK, fee, fmt.Sprintf("/fees/%d/edit", year), nil)
}

// POST /fees/:year/edit
func (h *FeeStructureHandler) Update(c *gin.Context) {
	year, ok := parseYear(c.Param("year"))
	if !ok {
		notFound(c)
		return
	}
	var fee model.FeeStructure
	if err := c.ShouldBind(&fee); err != nil {
		h.renderForm(c, http.StatusBadRequest, &fee, fmt.Sprintf("/fees/%d/edit", year), fieldErrors(err))
		return
	}
	if err := h.fees.Update(year, &fee); err != nil {
		switch {
		case errors.Is(err, service.ErrEditBlocked):
			setFlash(c, "You cannot edit fees from previous years!")
			c.Redirect(http.StatusSeeOther, "/fees")
		case errors.Is(err, service.ErrNotFound):
			notFound(c)
		default:
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/fees")
}

// GET /fees/:year/delete
func (h *FeeStructureHandler) Delete(c *gin.Context) {
	fee, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "feestructure_delete.html", gin.H{
		"Title": "Delete Fee Structure",
		"Item":  fee,
	})
}

// POST /fees/:year/delete
func (h *FeeStructureHandler) Destroy(c *gin.Context) {
	year, ok := parseYear(c.Param("year"))
	if !ok {
		notFound(c)
		return
	}
	if err := h.fees.Delete(year); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/fees")
}

func (h *FeeStructureHandler) fetch(c *gin.Context) (*model.FeeStructure, bool) {
	year, ok := parseYear(c.Param("year"))
	if !ok {
		notFound(c)
		return nil, false
	}
	fee, err := h.fees.Get(year)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return nil, false
	}
	return fee, true
}

func (h *FeeStructureHandler) renderForm(c *gin.Context, status int, fee *model.FeeStructure, action string, errs map[string]string) {
	render(c, status, "feestructure_form.html", gin.H{
		"Title":  "Annual Fee Structure",
		"Item":   fee,
		"Action": action,
		"Errors": errs,
	})
}
