package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/i18n"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/service"
)

// TruckClassesHandler serves truck class listing and admin management.
type TruckClassesHandler struct {
	service service.TruckClassService
}

// NewTruckClassesHandler creates a new TruckClassesHandler.
func NewTruckClassesHandler(svc service.TruckClassService) *TruckClassesHandler {
	return &TruckClassesHandler{service: svc}
}

// ListActive handles GET /api/truck-classes.
//
// @Summary      List active truck classes
// @Description  Returns the truck classes operators can select, ordered by name.
// @Tags         Truck Classes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.TruckClassListResponse}
// @Failure      503 {object} dto.ErrorResponse "Truck class store unavailable"
// @Router       /api/truck-classes [get]
func (h *TruckClassesHandler) ListActive(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewTruckClassListResponse(items))
}

// ListAll handles GET /api/admin/truck-classes, including inactive classes.
//
// @Summary      List all truck classes
// @Tags         Truck Classes
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.TruckClassListResponse}
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/truck-classes [get]
func (h *TruckClassesHandler) ListAll(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewTruckClassListResponse(items))
}

// Get handles GET /api/truck-classes/:id.
//
// @Summary      Get a truck class
// @Tags         Truck Classes
// @Produce      json
// @Param        id path string true "Truck class id"
// @Success      200 {object} dto.SuccessResponse{data=model.TruckClass}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/truck-classes/{id} [get]
func (h *TruckClassesHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	tc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(tc)
}

// Create handles POST /api/truck-classes.
//
// @Summary      Create a truck class
// @Description  Adds a truck class. loaded_multiplier defaults to 0.85. Supports the Idempotency-Key header.
// @Tags         Truck Classes
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        Idempotency-Key header string false "Idempotency key"
// @Param        request body dto.CreateTruckClassRequest true "Truck class"
// @Success      201 {object} dto.SuccessResponse{data=model.TruckClass}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Name already taken"
// @Security     BearerAuth
// @Router       /api/truck-classes [post]
func (h *TruckClassesHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateTruckClassRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	tc := model.NewTruckClass(req.Name, req.BaseKmPerLiter, 0)
	if req.LoadedMultiplier != nil {
		tc.LoadedMultiplier = *req.LoadedMultiplier
	}
	if req.IsActive != nil {
		tc.IsActive = *req.IsActive
	}

	created, err := h.service.Create(c.Request.Context(), &tc)
	if err != nil {
		middleware.AuditLogError(c, model.ActionCreateTruckClass, "Truck class creation failed", err,
			map[string]interface{}{"name": req.Name})
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(c, model.ActionCreateTruckClass, "Truck class created", map[string]interface{}{
		"truck_class_id": created.ID,
		"name":           created.Name,
	})
	c.Header("Location", "/api/truck-classes/"+created.ID)
	builder.SuccessCreated(created)
}

// Update handles PUT /api/truck-classes/:id as a partial update.
//
// @Summary      Update a truck class
// @Tags         Truck Classes
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Truck class id"
// @Param        request body dto.UpdateTruckClassRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.TruckClass}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/truck-classes/{id} [put]
func (h *TruckClassesHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateTruckClassRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}
	if req.IsEmpty() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyNoChanges, nil)
		return
	}

	id := c.Param("id")
	updated, err := h.service.Update(c.Request.Context(), id, service.TruckClassPatch{
		Name:             req.Name,
		BaseKmPerLiter:   req.BaseKmPerLiter,
		LoadedMultiplier: req.LoadedMultiplier,
		IsActive:         req.IsActive,
	})
	if err != nil {
		middleware.AuditLogError(c, model.ActionUpdateTruckClass, "Truck class update failed", err,
			map[string]interface{}{"truck_class_id": id})
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(c, model.ActionUpdateTruckClass, "Truck class updated", map[string]interface{}{
		"truck_class_id": updated.ID,
		"name":           updated.Name,
		"is_active":      updated.IsActive,
	})
	builder.SuccessOK(updated)
}

// Deactivate handles DELETE /api/truck-classes/:id. Truck classes are never removed.
//
// @Summary      Deactivate a truck class
// @Description  Hides the truck class from selection. Existing data keeps referring to it.
// @Tags         Truck Classes
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Truck class id"
// @Success      200 {object} dto.SuccessResponse{data=model.TruckClass}
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/truck-classes/{id} [delete]
func (h *TruckClassesHandler) Deactivate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	tc, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(c, model.ActionDeactivateTruckClass, "Truck class deactivated", map[string]interface{}{
		"truck_class_id": tc.ID,
		"name":           tc.Name,
	})
	builder.SuccessOK(tc)
}
