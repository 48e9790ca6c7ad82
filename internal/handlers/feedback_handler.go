package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"restaurant_menu/internal/services"
	"restaurant_menu/pkg/telegram"

	"github.com/gin-gonic/gin"
)

const maxFeedbackPhotos = 3

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SendFeedback accepts a multipart form with restaurant_id, rating, comment
// and up to three photo_<n> image files. Non-jpeg/png uploads are skipped.
func (h *FeedbackHandler) SendFeedback(c *gin.Context) {
	restaurantID := c.PostForm("restaurant_id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing restaurant ID"})
		return
	}

	feedback := services.Feedback{
		RestaurantID: restaurantID,
		Rating:       c.PostForm("rating"),
		Comment:      c.PostForm("comment"),
	}

	for i := 0; i < maxFeedbackPhotos; i++ {
		fileHeader, err := c.FormFile(fmt.Sprintf("photo_%d", i))
		if err != nil {
			continue
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType != "image/jpeg" && contentType != "image/png" {
			log.Printf("Skipping unsupported file type: %s", contentType)
			continue
		}

		file, err := fileHeader.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			continue
		}

		feedback.Photos = append(feedback.Photos, telegram.Photo{
			Filename: fileHeader.Filename,
			Data:     data,
		})
	}

	if err := h.feedbackService.SendFeedback(feedback); err != nil {
		switch {
		case errors.Is(err, services.ErrBotNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Bot not configured"})
		case errors.Is(err, services.ErrFeedbackNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant not configured for feedback"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send feedback"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
