package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiofit/studiofit-be/services"
)

// serviceError maps the booking/membership error taxonomy to HTTP statuses.
// Anything unrecognized is a storage failure and stays opaque to the client.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPlanKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMembershipNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrClassNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMembershipNotUsable),
		errors.Is(err, services.ErrNoCreditsRemaining):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
