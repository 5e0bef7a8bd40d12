package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saurabh1105/Socail-Connect/internal/auth"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"github.com/saurabh1105/Socail-Connect/internal/service"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	CurrentUser(c *gin.Context)
}

type authHandler struct {
	users service.UserService
}

func NewAuthHandler(users service.UserService) AuthHandler {
	return &authHandler{users: users}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *authHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	if errs := checkRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	token, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, repo.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Param: "email", Msg: "user already exists"}}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *authHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	if errs := checkRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidLogin) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Msg: "invalid credentials"}}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *authHandler) CurrentUser(c *gin.Context) {
	user, err := h.users.Load(c.Request.Context(), userID(c))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
