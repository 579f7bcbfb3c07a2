package handler

import (
	"gonotes/apperr"
	"gonotes/dto"
	"gonotes/usecase"
	"gonotes/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler creates a new account. Signup does not log the
// user in; clients call login afterwards for a token.
func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, apperr.Wrap(apperr.KindValidation, "username and password are required", err))
		return
	}

	if err := userService.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		utils.Error(c, err)
		return
	}

	utils.CreatedMessage(c, "user created successfully")
}
