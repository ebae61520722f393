package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/campus/internal/locale"
	"github.com/joshua-takyi/campus/internal/middleware"
	"github.com/joshua-takyi/campus/internal/models"
	"github.com/joshua-takyi/campus/internal/services"
)

func languageOf(c *gin.Context) locale.Language {
	return locale.Parse(c.GetString(locale.ContextKey), locale.Turkish)
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.MessageResponse(locale.Message(languageOf(c), locale.InvalidRequest)))
}

// respondError maps a service error onto the HTTP error taxonomy.
// invalidKey picks the headline message for schema validation failures.
func respondError(c *gin.Context, err error, invalidKey locale.Key) {
	lang := languageOf(c)

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		if len(verr.RequiredFields) > 0 {
			c.JSON(http.StatusBadRequest, models.RequiredFieldsResponse(
				locale.Message(lang, locale.RequiredFields), verr.RequiredFields))
			return
		}
		msgs := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			msgs = append(msgs, locale.FieldError(lang, f.Field, f.Rule, f.Param))
		}
		c.JSON(http.StatusBadRequest, models.ValidationResponse(locale.Message(lang, invalidKey), msgs))

	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.MessageResponse(locale.Message(lang, locale.EventNotFound)))

	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.MessageResponse(locale.Message(lang, locale.InvalidCredentials)))

	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, models.MessageResponse(locale.Message(lang, locale.EmailInUse)))

	default:
		_ = c.Error(err)
		resp := models.MessageResponse(locale.Message(lang, locale.InternalError))
		resp.RequestID = c.GetString(middleware.RequestIDKey)
		c.JSON(http.StatusInternalServerError, resp)
	}
}
