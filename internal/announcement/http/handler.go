package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington/school-backend/internal/announcement"
	"github.com/mergington/school-backend/internal/pkg/apperror"
	"github.com/mergington/school-backend/internal/pkg/request"
	"github.com/mergington/school-backend/internal/pkg/response"
)

type Handler struct {
	service announcement.Service
}

func NewHandler(service announcement.Service) *Handler {
	return &Handler{service: service}
}

// ListActive returns the announcements currently on display. Public.
func (h *Handler) ListActive(c *gin.Context) {
	list, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, toResponses(list))
}

// ListAll returns every announcement for the management view.
func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, toResponses(list))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	req := announcement.CreateRequest{
		Title:     body.Title,
		Message:   body.Message,
		StartDate: timePtr(body.StartDate),
		EndDate:   timePtr(body.EndDate),
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, NewResponse(a))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request"))
		return
	}

	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	req := announcement.UpdateRequest{
		Title:     body.Title,
		Message:   body.Message,
		StartDate: timePtr(body.StartDate),
		EndDate:   timePtr(body.EndDate),
	}

	a, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, NewResponse(a))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Status: "deleted"})
}

func toResponses(list []*announcement.Announcement) []Response {
	items := make([]Response, len(list))
	for i, a := range list {
		items[i] = NewResponse(a)
	}
	return items
}

// serviceError maps announcement service errors onto HTTP status codes.
// Unknown errors fall through as 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, announcement.ErrNotFound):
		return apperror.Wrap(err, http.StatusNotFound, err.Error())
	case errors.Is(err, announcement.ErrInvalidID),
		errors.Is(err, announcement.ErrTitleLength),
		errors.Is(err, announcement.ErrMessageLength),
		errors.Is(err, announcement.ErrEndDateRequired),
		errors.Is(err, announcement.ErrDateRange):
		return apperror.Wrap(err, http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
