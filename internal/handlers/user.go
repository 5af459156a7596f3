// internal/handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/modaluxe/backoffice/internal/i18n"
	"github.com/modaluxe/backoffice/internal/services"
	"github.com/modaluxe/backoffice/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	params := utils.GetListParams(c)

	users, total, err := h.userService.ListUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetListHeaders(c, total, params)
	utils.CollectionResponse(c, "users", users)
}

// POST /v1/admin/users
func (h *UserHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyUserEmailExists))
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "user", user)
}

// PUT /v1/admin/users
func (h *UserHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"))
		return
	}
	if req.ID == uuid.Nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	user, err := h.userService.UpdateUser(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyUserNotFound)
		case errors.Is(err, services.ErrEmailTaken):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyUserEmailExists))
		default:
			utils.BadRequestResponse(c, err.Error())
		}
		return
	}

	utils.ResourceResponse(c, "user", user)
}

// DELETE /v1/admin/users?id=
func (h *UserHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "id"))
		return
	}

	actorID, _ := currentUserID(c)

	if err := h.userService.DeleteUser(id, actorID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyUserNotFound)
		case errors.Is(err, services.ErrSelfDelete):
			utils.ErrorResponse(c, http.StatusConflict, i18n.T(lang, i18n.KeyUserSelfDelete))
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyUserDeleted))
}
