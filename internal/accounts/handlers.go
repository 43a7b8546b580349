package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	svc *Service
}

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

func (h *Handlers) Register(rg *gin.RouterGroup) {
	users := rg.Group("/v1/users")
	users.POST("/register", h.register)
	users.POST("/login", h.login)
	users.POST("/add_to_activity", h.addToActivity)
	users.GET("/get_all_activity", h.getAllActivity)
}

func (h *Handlers) register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	switch err := h.svc.Register(req.Name, req.Username, req.Password); {
	case errors.Is(err, ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
	case errors.Is(err, ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

func (h *Handlers) login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide username and password"})
		return
	}
	token, acct, err := h.svc.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user": gin.H{
				"id":       acct.ID,
				"name":     acct.Name,
				"username": acct.Username,
			},
		})
	}
}

func (h *Handlers) addToActivity(c *gin.Context) {
	var req struct {
		Token       string `json:"token"`
		MeetingCode string `json:"meeting_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.MeetingCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token and meeting code are required"})
		return
	}
	if err := h.svc.AddActivity(req.Token, req.MeetingCode); err != nil {
		h.tokenError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity added successfully"})
}

func (h *Handlers) getAllActivity(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
		return
	}
	activity, err := h.svc.Activities(token)
	if err != nil {
		h.tokenError(c, err)
		return
	}
	if activity == nil {
		activity = []Activity{}
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

func (h *Handlers) tokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired. Please log in again."})
	case errors.Is(err, ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
