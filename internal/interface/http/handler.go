// Package http exposes the calculation services over a JSON REST API.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/senthamizh/panchangam/internal/domain/chart"
	"github.com/senthamizh/panchangam/internal/domain/location"
	"github.com/senthamizh/panchangam/internal/domain/muhurta"
	"github.com/senthamizh/panchangam/internal/domain/panchang"
	"github.com/senthamizh/panchangam/internal/domain/tamilcal"
	apperrors "github.com/senthamizh/panchangam/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	chartSvc    chart.Service
	muhurtaSvc  muhurta.Service
	panchangSvc panchang.Service
	tamilcalSvc tamilcal.Service
	cities      *location.Registry
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chartSvc chart.Service, muhurtaSvc muhurta.Service, panchangSvc panchang.Service, tamilcalSvc tamilcal.Service, cities *location.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		chartSvc:    chartSvc,
		muhurtaSvc:  muhurtaSvc,
		panchangSvc: panchangSvc,
		tamilcalSvc: tamilcalSvc,
		cities:      cities,
		logger:      logger.With("component", "http.handler"),
	}
}

// DailyChart returns the sidereal rasi chart for a date/time/city.
func (h *Handler) DailyChart(c *gin.Context) {
	req := chart.Request{
		Date: c.Query("date"),
		Time: c.Query("time"),
		City: c.Query("city"),
	}
	resp, err := h.chartSvc.Daily(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("chart_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AuspiciousTimes returns Rahu Kaal and Yamaganda windows for a date.
func (h *Handler) AuspiciousTimes(c *gin.Context) {
	req := muhurta.Request{Date: c.Query("date"), City: c.Query("city")}
	resp, err := h.muhurtaSvc.AuspiciousTimes(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("auspicious_times_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Gowri returns the Gowri Panchangam slots and Nalla Neram windows.
func (h *Handler) Gowri(c *gin.Context) {
	req := muhurta.Request{Date: c.Query("date"), City: c.Query("city")}
	resp, err := h.muhurtaSvc.GowriNallaNeram(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("gowri_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Panchang returns the five elements for a date.
func (h *Handler) Panchang(c *gin.Context) {
	req := panchang.Request{Date: c.Query("date"), City: c.Query("city")}
	resp, err := h.panchangSvc.Complete(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("panchang_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TamilCalendar returns the month grid for a Gregorian year/month.
func (h *Handler) TamilCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "year must be an integer", err))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "month must be an integer", err))
		return
	}
	req := tamilcal.Request{Year: year, Month: month, City: c.Query("city")}
	resp, err := h.tamilcalSvc.Month(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError("tamil_calendar_failed", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cities lists the supported cities with coordinates.
func (h *Handler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cities":  h.cities.All(),
		"default": location.DefaultCity,
	})
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// domainError maps domain error codes onto HTTP statuses. Validation
// failures are the caller's fault; astronomically unanswerable requests
// are unprocessable rather than server errors.
func domainError(fallbackCode string, err error) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, apperrors.CodeRiseSetUnavailable),
		apperrors.IsCode(err, apperrors.CodeSearchExhausted),
		apperrors.IsCode(err, apperrors.CodeUnsupportedLatitude):
		status = http.StatusUnprocessableEntity
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
