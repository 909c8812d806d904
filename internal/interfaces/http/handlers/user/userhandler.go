package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixwise/internal/application/user/usecases"
	"fixwise/internal/interfaces/http/middleware"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/utils"
)

type UserHandler struct {
	loginUC      usecases.LoginExecutor
	createUserUC usecases.CreateUserExecutor
	logger       logger.Interface
}

func NewUserHandler(loginUC usecases.LoginExecutor, createUserUC usecases.CreateUserExecutor) *UserHandler {
	return &UserHandler{
		loginUC:      loginUC,
		createUserUC: createUserUC,
		logger:       logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.LoginCommand{Email: req.Email, Password: req.Password}
	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := LoginResponse{Token: result.Token, ExpiresAt: result.ExpiresAt, User: result.User}
	utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.User, "User created successfully")
}
