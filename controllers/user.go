package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiofit/studiofit-be/config"
	"github.com/studiofit/studiofit-be/models"
	"github.com/studiofit/studiofit-be/services"
)

type UserController struct {
	membershipService *services.MembershipService
	bookingService    *services.BookingService
}

func NewUserController() *UserController {
	return &UserController{
		membershipService: services.NewMembershipService(config.DB),
		bookingService:    services.NewBookingService(config.DB),
	}
}

// GetProfile is the auth summary: profile data, upcoming active bookings and
// currently usable memberships.
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()

	bookings, err := uc.bookingService.GetFutureBookings(user.ID, now)
	if err != nil {
		serviceError(c, err)
		return
	}

	memberships, err := uc.membershipService.GetUserMemberships(user.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	usable := make([]models.MembershipPurchase, 0)
	for i := range memberships {
		if services.IsUsable(&memberships[i], now) {
			usable = append(usable, memberships[i])
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":               user,
		"booked_classes":     bookings,
		"usable_memberships": usable,
	})
}
