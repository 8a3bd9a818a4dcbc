package latefee

import (
	"net/http"
	"time"

	latefeeerrors "go-schoolfee/internal/latefee/errors"
	"go-schoolfee/internal/shared/apperror"
	"go-schoolfee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("latefee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("latefee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("late fee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// bindAsOf reads the optional {"as_of": "YYYY-MM-DD"} body.
func bindAsOf(c *gin.Context) (time.Time, error) {
	now := time.Now().UTC()
	if c.Request.ContentLength == 0 {
		return now, nil
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return time.Time{}, apperror.MapValidationError(err)
	}
	if req.AsOf == "" {
		return now, nil
	}

	asOf, err := time.Parse("2006-01-02", req.AsOf)
	if err != nil {
		return time.Time{}, latefeeerrors.ErrInvalidAsOf
	}
	return asOf, nil
}

func (h *Handler) ApplyLateFees(c *gin.Context) {
	asOf, err := bindAsOf(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ApplyLateFees(c.Request.Context(), c.GetString("school_id"), asOf)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CronApplyLateFees(c *gin.Context) {
	asOf, err := bindAsOf(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ApplyLateFeesGlobal(c.Request.Context(), asOf)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPolicy(c *gin.Context) {
	resp, err := h.service.GetPolicy(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpsertPolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpsertPolicy(c.Request.Context(), c.GetString("school_id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
