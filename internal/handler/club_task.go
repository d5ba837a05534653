package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/IsabelaBoudoux/Sail1/internal/service"
	"github.com/gin-gonic/gin"
)

type ClubTaskHandler struct {
	tasks *service.ClubTaskService
}

func NewClubTaskHandler(tasks *service.ClubTaskService) *ClubTaskHandler {
	return &ClubTaskHandler{tasks: tasks}
}

// GET /tasks
func (h *ClubTaskHandler) Index(c *gin.Context) {
	tasks, err := h.tasks.List()
	if err != nil {
		internalError(c, err)
		return
	}
	render(c, http.StatusOK, "task_index.html", gin.H{
		"Title": "Tasks",
		"Items": tasks,
	})
}

// GET /tasks/:id
func (h *ClubTaskHandler) Details(c *gin.Context) {
	task, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "task_detail.html", gin.H{
		"Title": task.Name,
		"Item":  task,
	})
}

// GET /tasks/new
func (h *ClubTaskHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &model.ClubTask{}, "/tasks", nil)
}

// POST /tasks
func (h *ClubTaskHandler) Create(c *gin.Context) {
	var task model.ClubTask
	if err := c.ShouldBind(&task); err != nil {
		h.renderForm(c, http.StatusBadRequest, &task, "/tasks", fieldErrors(err))
		return
	}
	if err := h.tasks.Create(&task); err != nil {
		internalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/tasks")
}

// GET /tasks/:id/edit
func (h *ClubTaskHandler) Edit(c *gin.Context) {
	task, ok := h.fetch(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, task, fmt.Sprintf("/tasks/%d/edit", task.TaskID), nil)
}

// POST /tasks/:id/edit
func (h *ClubTaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	var task model.ClubTask
	if err := c.ShouldBind(&task); err != nil {
		h.renderForm(c, http.StatusBadRequest, &task, fmt.Sprintf("/tasks/%d/edit", id), fieldErrors(err))
		return
	}
	if err := h.tasks.Update(id, &task); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/tasks")
}

// GET /tasks/:id/delete
func (h *ClubTaskHandler) Delete(c *gin.Context) {
	task, ok := h.fetch(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "task_delete.html", gin.H{
		"Title": "Delete Task",
		"Item":  task,
	})
}

// POST /tasks/:id/delete
func (h *ClubTaskHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}
	if err := h.tasks.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/tasks")
}

func (h *ClubTaskHandler) fetch(c *gin.Context) (*model.ClubTask, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		notFound(c)
		return nil, false
	}
	task, err := h.tasks.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err)
		}
		return nil, false
	}
	return task, true
}

func (h *ClubTaskHandler) renderForm(c *gin.Context, status int, task *model.ClubTask, action string, errs map[string]string) {
	render(c, status, "task_form.html", gin.H{
		"Title":  "Task",
		"Item":   task,
		"Action": action,
		"Errors": errs,
	})
}
