package company

import (
	"net/http"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/shared/apperror"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("company request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	search := c.Query("search")
	h.logger.Debug("http list companies", zap.String("user_id", userID))

	resp, err := h.service.List(c.Request.Context(), userID, search)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	search := c.Query("search")
	h.logger.Debug("http company summary", zap.String("user_id", userID))

	resp, err := h.service.Summary(c.Request.Context(), userID, search)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	id := c.Param("id")
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
