package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studiofit/studiofit-be/config"
	"github.com/studiofit/studiofit-be/services"
)

type ClassController struct {
	classService   *services.ClassService
	bookingService *services.BookingService
}

func NewClassController() *ClassController {
	return &ClassController{
		classService:   services.NewClassService(config.DB),
		bookingService: services.NewBookingService(config.DB),
	}
}

// GetClasses lists the schedule, each session flagged with whether the
// authenticated user already booked it. Optional ?date=YYYY-MM-DD filter.
func (cc *ClassController) GetClasses(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var date time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	classes, err := cc.bookingService.GetClassesWithBookingStatus(userID.(uint), date)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

func (cc *ClassController) GetClass(c *gin.Context) {
	classID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class id"})
		return
	}

	class, err := cc.classService.GetClass(uint(classID))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"class": class})
}
