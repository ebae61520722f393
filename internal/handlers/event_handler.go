package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/campus/internal/locale"
	"github.com/joshua-takyi/campus/internal/models"
	"github.com/joshua-takyi/campus/internal/services"
)

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListEvents(c.Request.Context())
		if err != nil {
			respondError(c, err, locale.ValidationFailed)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func ListEventsByCreator(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListEventsByCreator(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err, locale.ValidationFailed)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := es.GetEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, locale.ValidationFailed)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c)
			return
		}

		event, err := es.CreateEvent(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err, locale.ValidationFailed)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(event, locale.Message(languageOf(c), locale.EventCreated)))
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c)
			return
		}

		event, err := es.UpdateEvent(c.Request.Context(), c.Param("id"), &in)
		if err != nil {
			respondError(c, err, locale.ValidationFailed)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, locale.Message(languageOf(c), locale.EventUpdated)))
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := es.DeleteEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, locale.ValidationFailed)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, locale.Message(languageOf(c), locale.EventDeleted)))
	}
}
