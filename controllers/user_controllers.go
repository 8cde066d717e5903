package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pizzaecia/vendor-pos/models"
	"github.com/pizzaecia/vendor-pos/stores"
	"github.com/pizzaecia/vendor-pos/utils"
)

type UserController struct {
	Users stores.IdentityStore
}

func NewUserController(users stores.IdentityStore) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.Users.List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"omitempty,oneof=admin vendor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user := models.User{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := uc.Users.Create(&user); err != nil {
		// a duplicate username surfaces here as a constraint violation
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Username, user.Role)
	c.JSON(http.StatusCreated, user)
}
