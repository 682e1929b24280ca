package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/interfaces/dto"
	"github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

type EquipmentHandler struct {
	createUC    CreateEquipmentExecutor
	getUC       GetEquipmentExecutor
	listUC      ListEquipmentExecutor
	canDeleteUC CanDeleteEquipmentExecutor
	deleteUC    DeleteExecutor
	logger      logger.Interface
}

func NewEquipmentHandler(
	createUC CreateEquipmentExecutor,
	getUC GetEquipmentExecutor,
	listUC ListEquipmentExecutor,
	canDeleteUC CanDeleteEquipmentExecutor,
	deleteUC DeleteExecutor,
	logger logger.Interface,
) *EquipmentHandler {
	return &EquipmentHandler{
		createUC:    createUC,
		getUC:       getUC,
		listUC:      listUC,
		canDeleteUC: canDeleteUC,
		deleteUC:    deleteUC,
		logger:      logger,
	}
}

// Create handles POST /equipments
// @Summary Create an equipment
// @Tags equipments
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /equipments [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Equipment created successfully")
}

// List handles GET /equipments
// @Summary List equipments
// @Tags equipments
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /equipments [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /equipments/:id
// @Summary Get an equipment
// @Tags equipments
// @Produce json
// @Security Bearer
// @Param id path int true "Equipment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /equipments/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CanDelete handles GET /equipments/:id/deletable. A blocked deletion is
// reported as data, not as an error status.
// @Summary Check whether an equipment can be deleted
// @Tags equipments
// @Produce json
// @Security Bearer
// @Param id path int true "Equipment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /equipments/{id}/deletable [get]
func (h *EquipmentHandler) CanDelete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deletable, err := h.canDeleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeConflict {
			utils.SuccessResponse(c, http.StatusOK, "", gin.H{"deletable": false, "reason": appErr.Message})
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"deletable": deletable})
}

// Delete handles DELETE /equipments/:id
// @Summary Delete an equipment
// @Tags equipments
// @Produce json
// @Security Bearer
// @Param id path int true "Equipment ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /equipments/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

type TechnicianHandler struct {
	createUC CreateTechnicianExecutor
	listUC   ListTechniciansExecutor
	deleteUC DeleteExecutor
	logger   logger.Interface
}

func NewTechnicianHandler(
	createUC CreateTechnicianExecutor,
	listUC ListTechniciansExecutor,
	deleteUC DeleteExecutor,
	logger logger.Interface,
) *TechnicianHandler {
	return &TechnicianHandler{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// Create handles POST /technicians
// @Summary Create a technician
// @Tags technicians
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateTechnicianRequest true "Technician data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /technicians [post]
func (h *TechnicianHandler) Create(c *gin.Context) {
	var req dto.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Technician created successfully")
}

// List handles GET /technicians
// @Summary List technicians
// @Tags technicians
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /technicians [get]
func (h *TechnicianHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /technicians/:id
// @Summary Delete a technician
// @Tags technicians
// @Produce json
// @Security Bearer
// @Param id path int true "Technician ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /technicians/{id} [delete]
func (h *TechnicianHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "technician")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
