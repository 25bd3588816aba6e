package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiofit/studiofit-be/config"
	"github.com/studiofit/studiofit-be/models"
	"github.com/studiofit/studiofit-be/services"
	"github.com/studiofit/studiofit-be/websocket"
)

type AdminController struct {
	authService       *services.AuthService
	classService      *services.ClassService
	membershipService *services.MembershipService
}

func NewAdminController() *AdminController {
	return &AdminController{
		authService:       services.NewAuthService(config.DB),
		classService:      services.NewClassService(config.DB),
		membershipService: services.NewMembershipService(config.DB),
	}
}

type CreateUserRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=6"`
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name"`
	Role      models.UserRole `json:"role"`
}

func (ac *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}

	user, err := ac.authService.CreateUser(req.Email, req.Password, req.FirstName, req.LastName, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (ac *AdminController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

type CreateClassRequest struct {
	Name           string    `json:"name" binding:"required"`
	Description    string    `json:"description"`
	InstructorName string    `json:"instructor_name" binding:"required"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time"` // optional, defaults to start + 1h
	Capacity       int       `json:"capacity"` // 0 = unlimited
}

func (ac *AdminController) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := ac.classService.CreateClass(
		req.Name, req.Description, req.InstructorName,
		req.StartTime, req.EndTime, req.Capacity)
	if err != nil {
		serviceError(c, err)
		return
	}

	if config.WSHub != nil {
		config.WSHub.BroadcastEvent(websocket.EventClassCreated, websocket.ClassEvent{
			ClassID:        class.ID,
			ClassName:      class.Name,
			Date:           class.Date.Format("2006-01-02"),
			StartTime:      class.StartTime.Format("15:04"),
			InstructorName: class.InstructorName,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Class created successfully",
		"class":   class,
	})
}

type GrantMembershipRequest struct {
	UserID    uint            `json:"user_id" binding:"required"`
	Plan      models.PlanKind `json:"plan" binding:"required"`
	StartDate string          `json:"start_date"` // YYYY-MM-DD, defaults to today
}

// GrantMembership records a membership purchase for any user, used when
// payment was taken at the front desk.
func (ac *AdminController) GrantMembership(c *gin.Context) {
	var req GrantMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format, use YYYY-MM-DD"})
			return
		}
		startDate = parsed
	}

	membership, err := ac.membershipService.CreateMembership(req.UserID, req.Plan, startDate)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Membership granted successfully",
		"membership": membership,
	})
}
