package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzaecia/vendor-pos/stores"
	"github.com/pizzaecia/vendor-pos/utils"
)

type AuthController struct {
	Users stores.IdentityStore
}

func NewAuthController(users stores.IdentityStore) *AuthController {
	return &AuthController{Users: users}
}

var errInvalidCredentials = errors.New("invalid credentials")

// Login checks the credentials and answers with the user plus a bearer
// token for the authenticated routes.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ac.Users.GetByUsername(input.Username)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for %s (role=%s)", user.Username, user.Role)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me returns the profile of the bearer-token user.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	user, err := ac.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
