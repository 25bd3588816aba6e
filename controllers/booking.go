package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studiofit/studiofit-be/config"
	"github.com/studiofit/studiofit-be/services"
	"github.com/studiofit/studiofit-be/websocket"
)

type BookingController struct {
	bookingService *services.BookingService
}

func NewBookingController() *BookingController {
	return &BookingController{
		bookingService: services.NewBookingService(config.DB),
	}
}

type BookClassRequest struct {
	ClassID      uint `json:"class_id" binding:"required"`
	MembershipID uint `json:"membership_id" binding:"required"`
}

func (bc *BookingController) BookClass(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req BookClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bc.bookingService.BookClass(userID.(uint), req.ClassID, req.MembershipID)
	if err != nil {
		serviceError(c, err)
		return
	}

	if config.WSHub != nil {
		config.WSHub.BroadcastEvent(websocket.EventBookingCreated, websocket.BookingEvent{
			BookingID: booking.ID,
			Reference: booking.Reference,
			ClassID:   booking.ClassSessionID,
			ClassName: booking.ClassSession.Name,
			StartTime: booking.ClassSession.StartTime.Format("2006-01-02 15:04"),
			Action:    "created",
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Class booked successfully",
		"booking": booking,
	})
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, _ := c.Get("user_id")

	classID, err := strconv.ParseUint(c.Param("classId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class id"})
		return
	}

	if err := bc.bookingService.CancelBooking(userID.(uint), uint(classID)); err != nil {
		serviceError(c, err)
		return
	}

	if config.WSHub != nil {
		config.WSHub.BroadcastEvent(websocket.EventBookingCancelled, websocket.BookingEvent{
			ClassID: uint(classID),
			Action:  "cancelled",
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, _ := c.Get("user_id")

	bookings, err := bc.bookingService.GetUserBookings(userID.(uint))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
