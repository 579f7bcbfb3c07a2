package handler

import (
	"gonotes/apperr"
	"gonotes/dto"
	"gonotes/services"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler verifies credentials and issues a one-hour session
// token. Failure responses stay generic on purpose; a missing account
// and a wrong password are indistinguishable to the caller.
func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, apperr.Wrap(apperr.KindValidation, "username and password are required", err))
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.Error(c, err)
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.Error(c, apperr.Wrap(apperr.KindInternal, "failed to generate token", err))
		return
	}

	utils.Success(c, dto.TokenResponse{Token: token})
}
