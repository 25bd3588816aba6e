package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiofit/studiofit-be/config"
	"github.com/studiofit/studiofit-be/models"
	"github.com/studiofit/studiofit-be/services"
)

type MembershipController struct {
	membershipService *services.MembershipService
}

func NewMembershipController() *MembershipController {
	return &MembershipController{
		membershipService: services.NewMembershipService(config.DB),
	}
}

type CreateMembershipRequest struct {
	Plan      models.PlanKind `json:"plan" binding:"required"`
	StartDate string          `json:"start_date"` // YYYY-MM-DD, defaults to today
}

// CreateMembership records a purchase for the authenticated user. Payment is
// collected out of band and assumed authorized by the time this is called.
func (mc *MembershipController) CreateMembership(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req CreateMembershipRequest
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

	membership, err := mc.membershipService.CreateMembership(userID.(uint), req.Plan, startDate)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Membership created successfully",
		"membership": membership,
	})
}

// GetMemberships returns the user's full purchase history with a usable flag
// per membership.
func (mc *MembershipController) GetMemberships(c *gin.Context) {
	userID, _ := c.Get("user_id")

	memberships, err := mc.membershipService.GetUserMemberships(userID.(uint))
	if err != nil {
		serviceError(c, err)
		return
	}

	now := time.Now()
	result := make([]gin.H, 0, len(memberships))
	for i := range memberships {
		result = append(result, gin.H{
			"membership": memberships[i],
			"usable":     services.IsUsable(&memberships[i], now),
		})
	}

	c.JSON(http.StatusOK, gin.H{"memberships": result})
}

// GetPlans exposes the plan catalog.
func (mc *MembershipController) GetPlans(c *gin.Context) {
	plans := make([]gin.H, 0)
	for _, kind := range services.PlanKinds() {
		months, _ := services.DurationMonths(kind)
		credits, _ := services.CreditsGranted(kind)
		plans = append(plans, gin.H{
			"plan":            kind,
			"duration_months": months,
			"credits":         credits,
		})
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
