package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mif-gmao/gmao/internal/interfaces/dto"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

type NotificationHandler struct {
	listUC ListNotificationsExecutor
	sendUC SendNotificationExecutor
	logger logger.Interface
}

func NewNotificationHandler(listUC ListNotificationsExecutor, sendUC SendNotificationExecutor, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		listUC: listUC,
		sendUC: sendUC,
		logger: logger,
	}
}

// List handles GET /notifications?user_id=&intervention_id=&limit=&offset=
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param user_id query int false "Recipient user ID"
// @Param intervention_id query int false "Intervention ID"
// @Param limit query int false "Maximum items, capped at 200" default(50)
// @Param offset query int false "Items to skip"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), params.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Send handles POST /notifications. The stored record carries the delivery
// status; a failed delivery still answers 201.
// @Summary Send a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.SendNotificationRequest true "Notification"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.sendUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Notification recorded")
}
