package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mna-portal/societa-api/internal/api/metrics"
	"github.com/mna-portal/societa-api/internal/api/middleware"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for società records.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Get handles GET /api/societa/:id. Auth is optional: the service renders the
// record according to whatever identity is attached.
//
// @Summary      Get a company
// @Tags         societa
// @Produce      json
// @Param        id  path      int  true  "Company id"
// @Success      200  {object}  companyViewResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/societa/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Get(c.Request().Context(), id, middleware.Identity(c))
	if err != nil {
		return err
	}

	if view.Full != nil {
		metrics.CompanyViewsTotal.WithLabelValues("full").Inc()
	} else {
		metrics.CompanyViewsTotal.WithLabelValues("censored").Inc()
	}
	return c.JSON(http.StatusOK, companyViewResponse{Message: view.Message, Data: view.Data()})
}

// List handles GET /api/societa.
//
// @Summary      List companies
// @Tags         societa
// @Produce      json
// @Success      200  {object}  companyViewResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/societa [get]
func (h *CompanyHandler) List(c echo.Context) error {
	view, err := h.service.List(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyViewResponse{Message: view.Message, Data: view.Data()})
}

// Create handles POST /api/societa (admin only).
//
// @Summary      Create a company
// @Tags         societa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company details"
// @Success      201   {object}  companyMutationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/societa [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if *req.Ebitda > *req.Fatturato {
		return echo.NewHTTPError(http.StatusBadRequest, "ebitda cannot exceed fatturato")
	}

	company, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.CompanyMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, companyMutationResponse{
		Success: true,
		Message: "company created",
		Data:    company,
	})
}

// Update handles PATCH /api/societa/:id (admin only). At least one recognized
// field must be present; the ebitda <= fatturato invariant is re-checked only
// when both fields appear in the same payload.
//
// @Summary      Partially update a company
// @Tags         societa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Company id"
// @Param        body  body      updateCompanyRequest  true  "Fields to update"
// @Success      200   {object}  companyMutationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/societa/{id} [patch]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := req.toInput()
	if input.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one field to update")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Fatturato != nil && req.Ebitda != nil && *req.Ebitda > *req.Fatturato {
		return echo.NewHTTPError(http.StatusBadRequest, "ebitda cannot exceed fatturato")
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	metrics.CompanyMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, companyMutationResponse{
		Success: true,
		Message: "company updated",
		Data:    company,
	})
}

// Delete handles DELETE /api/societa/:id (admin only).
//
// @Summary      Delete a company
// @Tags         societa
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Company id"
// @Success      200  {object}  companyDeleteResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/societa/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CompanyMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, companyDeleteResponse{
		Success:   true,
		Message:   "company deleted",
		DeletedID: id,
	})
}
