package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/interfaces/dto"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

type PlanningHandler struct {
	createUC   CreatePlanningExecutor
	updateUC   UpdatePlanningExecutor
	deleteUC   DeletePlanningExecutor
	listUC     ListPlanningsExecutor
	getUC      GetPlanningExecutor
	generateUC GenerationRunner
	logger     logger.Interface
}

func NewPlanningHandler(
	createUC CreatePlanningExecutor,
	updateUC UpdatePlanningExecutor,
	deleteUC DeletePlanningExecutor,
	listUC ListPlanningsExecutor,
	getUC GetPlanningExecutor,
	generateUC GenerationRunner,
	logger logger.Interface,
) *PlanningHandler {
	return &PlanningHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
		getUC:      getUC,
		generateUC: generateUC,
		logger:     logger,
	}
}

// Create handles POST /plannings
// @Summary Create a planning
// @Tags plannings
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreatePlanningRequest true "Planning data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plannings [post]
func (h *PlanningHandler) Create(c *gin.Context) {
	var req dto.CreatePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Planning created successfully")
}

// List handles GET /plannings?equipment_id=
// @Summary List plannings
// @Tags plannings
// @Produce json
// @Security Bearer
// @Param equipment_id query int false "Equipment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /plannings [get]
func (h *PlanningHandler) List(c *gin.Context) {
	equipmentID, err := utils.ParseOptionalUintQuery(c, "equipment_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), equipmentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /plannings/:id
// @Summary Get a planning
// @Tags plannings
// @Produce json
// @Security Bearer
// @Param id path int true "Planning ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plannings/{id} [get]
func (h *PlanningHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "planning")
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

// Update handles PATCH /plannings/:id
// @Summary Update a planning
// @Tags plannings
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Planning ID"
// @Param request body dto.UpdatePlanningRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /plannings/{id} [patch]
func (h *PlanningHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "planning")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdatePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	cmd, err := req.ToCommand(id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Planning updated successfully", result)
}

// Delete handles DELETE /plannings/:id
// @Summary Delete a planning
// @Tags plannings
// @Produce json
// @Security Bearer
// @Param id path int true "Planning ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plannings/{id} [delete]
func (h *PlanningHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "planning")
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

// Generate handles POST /plannings/generate. Per-planning failures are part
// of the result; the call itself succeeds unless listing due plannings fails.
// @Summary Generate preventive interventions
// @Tags plannings
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /plannings/generate [post]
func (h *PlanningHandler) Generate(c *gin.Context) {
	result, err := h.generateUC.Run(c.Request.Context())
	if result == nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err != nil {
		h.logger.Warnw("planning generation finished with failures",
			"run_id", result.RunID,
			"failed", result.Failed)
	}

	utils.SuccessResponse(c, http.StatusOK, "Generation completed", result)
}
