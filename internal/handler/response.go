package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Rendering and flash helpers shared by all page handlers.

const flashKey = "message"

// setFlash stores a one-shot notice shown on the next rendered page,
// the moral equivalent of TempData in the old club site.
func setFlash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.Set(flashKey, msg)
	if err := sess.Save(); err != nil {
		slog.Warn("save session flash", "error", err)
	}
}

func takeFlash(c *gin.Context) string {
	sess := sessions.Default(c)
	v := sess.Get(flashKey)
	if v == nil {
		return ""
	}
	sess.Delete(flashKey)
	if err := sess.Save(); err != nil {
		slog.Warn("clear session flash", "error", err)
	}
	msg, _ := v.(string)
	return msg
}

func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = takeFlash(c)
	}
	c.HTML(status, name, data)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "Not Found"})
}

func internalError(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.FullPath(), "error", err)
	render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Title": "Error",
		"Error": err.Error(),
	})
}

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseYear(s string) (int, bool) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

// fieldErrors flattens a binding failure into field -> message pairs for
// re-display next to the offending inputs. Non-validator errors (bad
// number or date formats) land under the empty key as a page-level note.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "This field is required"
			case "max":
				out[fe.Field()] = "Value is too long"
			case "min":
				out[fe.Field()] = "Value is too small"
			case "email":
				out[fe.Field()] = "Not a valid email address"
			case "len":
				out[fe.Field()] = "Wrong length"
			default:
				out[fe.Field()] = "Invalid value"
			}
		}
		return out
	}
	out[""] = err.Error()
	return out
}
