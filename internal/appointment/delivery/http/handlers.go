package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailortalk/internal/appointment"
	"tailortalk/pkg/response"
)

// Chat godoc
// @Summary     Chat with the scheduling assistant
// @Description Runs one message through the parse → search → confirm → respond pipeline.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} errorResp "Validation error"
// @Failure     500 {object} errorResp "Pipeline or calendar failure"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	// Strict schema: unknown fields are a validation error, not ignored.
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	var req chatReq
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Detail: err.Error()})
		return
	}
	if req.Text == nil {
		c.JSON(http.StatusBadRequest, errorResp{Detail: appointment.ErrMissingText.Error()})
		return
	}

	out, err := h.uc.Chat(ctx, appointment.ChatInput{Text: *req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, chatResp{Response: out.Response})
}

// ListEvents godoc
// @Summary     List booked appointments for a day
// @Description Returns calendar events for the given date.
// @Tags        Appointments
// @Accept      json
// @Produce     json
// @Param       date query string true "Day to list, YYYY-MM-DD"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /appointments [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	date := c.Query("date")
	if date == "" {
		response.Error(c, appointment.ErrInvalidDate, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, appointment.ListEventsInput{Date: date})
	if err != nil {
		if errors.Is(err, appointment.ErrInvalidDate) {
			response.Error(c, appointment.ErrInvalidDate, nil)
			return
		}
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}
