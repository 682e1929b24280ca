package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/application/intervention/usecases"
	"github.com/mif-gmao/gmao/internal/interfaces/dto"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

type InterventionHandler struct {
	createUC       usecases.CreateInterventionExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	assignUC       usecases.AssignTechnicianExecutor
	addHistoryUC   usecases.AddHistoryExecutor
	getUC          usecases.GetInterventionExecutor
	listUC         usecases.ListInterventionsExecutor
	listHistoryUC  usecases.ListHistoryExecutor
	logger         logger.Interface
}

func NewInterventionHandler(
	createUC usecases.CreateInterventionExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignUC usecases.AssignTechnicianExecutor,
	addHistoryUC usecases.AddHistoryExecutor,
	getUC usecases.GetInterventionExecutor,
	listUC usecases.ListInterventionsExecutor,
	listHistoryUC usecases.ListHistoryExecutor,
	logger logger.Interface,
) *InterventionHandler {
	return &InterventionHandler{
		createUC:       createUC,
		changeStatusUC: changeStatusUC,
		assignUC:       assignUC,
		addHistoryUC:   addHistoryUC,
		getUC:          getUC,
		listUC:         listUC,
		listHistoryUC:  listHistoryUC,
		logger:         logger,
	}
}

// Create handles POST /interventions
// @Summary Create an intervention
// @Tags interventions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateInterventionRequest true "Intervention data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /interventions [post]
func (h *InterventionHandler) Create(c *gin.Context) {
	var req dto.CreateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create intervention", "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	creatorID, err := principalID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(creatorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Intervention created successfully")
}

// List handles GET /interventions
// @Summary List interventions
// @Tags interventions
// @Produce json
// @Security Bearer
// @Param status query string false "Status literal, French or English"
// @Param type query string false "Intervention type"
// @Param priority query string false "Priority"
// @Param urgent query bool false "Urgent only"
// @Param technician_id query int false "Technician ID"
// @Param equipment_id query int false "Equipment ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /interventions [get]
func (h *InterventionHandler) List(c *gin.Context) {
	var params dto.ListInterventionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}
	pagination := utils.ParsePagination(c)
	params.Page, params.PageSize = pagination.Page, pagination.PageSize

	result, err := h.listUC.Execute(c.Request.Context(), params.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /interventions/:id
// @Summary Get an intervention
// @Tags interventions
// @Produce json
// @Security Bearer
// @Param id path int true "Intervention ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /interventions/{id} [get]
func (h *InterventionHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "intervention")
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

// ChangeStatus handles PATCH /interventions/:id/status
// @Summary Change intervention status
// @Tags interventions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Intervention ID"
// @Param request body dto.ChangeStatusRequest true "Requested status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /interventions/{id}/status [patch]
func (h *InterventionHandler) ChangeStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	actorID, err := principalID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		InterventionID: id,
		Status:         req.Status,
		Remark:         req.Remark,
		PrincipalID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

// AssignTechnician handles PATCH /interventions/:id/technician
// @Summary Assign a technician
// @Tags interventions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Intervention ID"
// @Param request body dto.AssignTechnicianRequest true "Technician"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /interventions/{id}/technician [patch]
func (h *InterventionHandler) AssignTechnician(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	actorID, err := principalID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTechnicianCommand{
		InterventionID: id,
		TechnicianID:   req.TechnicianID,
		PrincipalID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Technician assigned", result)
}

// AddHistory handles POST /interventions/:id/history
// @Summary Append a history entry
// @Tags interventions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Intervention ID"
// @Param request body dto.AddHistoryRequest true "History entry"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /interventions/{id}/history [post]
func (h *InterventionHandler) AddHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	actorID, err := principalID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addHistoryUC.Execute(c.Request.Context(), usecases.AddHistoryCommand{
		InterventionID: id,
		Status:         req.Status,
		Remark:         req.Remark,
		PrincipalID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "History entry added")
}

// ListHistory handles GET /interventions/:id/history
// @Summary List intervention history
// @Tags interventions
// @Produce json
// @Security Bearer
// @Param id path int true "Intervention ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /interventions/{id}/history [get]
func (h *InterventionHandler) ListHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "intervention")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listHistoryUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
