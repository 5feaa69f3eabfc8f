package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communitycare/report-system/internal/api/metrics"
	"github.com/communitycare/report-system/internal/core/domain"
	"github.com/communitycare/report-system/internal/core/ports"
)

// ReportHandler handles HTTP requests for report operations. Domain errors
// propagate to the central error handler for status mapping.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportListResponse struct {
	Reports []*domain.Report `json:"reports"`
}

// Create handles POST /reports — files a new report owned by the caller.
//
// @Summary      Create a new report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReportRequest  true  "Report details"
// @Success      201   {object}  createReportResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, username, err := ctxClaims(c)
	if err != nil {
		return err
	}

	report, err := h.service.Create(c.Request().Context(), ports.CreateReportInput{
		OwnerID:     userID,
		OwnerName:   username,
		ProblemType: req.ProblemType,
		Location:    req.Location,
		Issue:       req.Issue,
		Priority:    req.Priority,
		PhotoData:   req.PhotoData,
	})
	if err != nil {
		return err
	}

	metrics.ReportsCreatedTotal.WithLabelValues(string(report.Priority)).Inc()
	return c.JSON(http.StatusCreated, createReportResponse{
		Message:  "Report created successfully",
		ReportID: report.ID,
	})
}

// ListMine handles GET /reports/my-reports — the caller's reports, newest first.
//
// @Summary      List own reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportListResponse
// @Failure      401  {object}  map[string]string
// @Router       /reports/my-reports [get]
func (h *ReportHandler) ListMine(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	reports, err := h.service.ListForOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reportListResponse{Reports: reports})
}

// ListAll handles GET /reports — every report, newest first. Admin only.
//
// @Summary      List all reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /reports [get]
func (h *ReportHandler) ListAll(c echo.Context) error {
	reports, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reportListResponse{Reports: reports})
}

// UpdateStatus handles PUT /reports/:id/status. Admin only.
//
// @Summary      Update report status
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Report id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reports/{id}/status [put]
func (h *ReportHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.SetStatus(c.Request().Context(), ports.SetStatusInput{
		ReportID: c.Param("id"),
		Status:   req.Status,
		ActorID:  userID,
	}); err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Report status updated successfully"})
}

// Delete handles DELETE /reports/:id. Admin only and irreversible.
//
// @Summary      Delete a report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Report id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reports/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ports.DeleteReportInput{
		ReportID: c.Param("id"),
		ActorID:  userID,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Report deleted successfully"})
}
