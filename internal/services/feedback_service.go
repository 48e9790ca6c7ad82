package services

import (
	"errors"
	"fmt"

	"restaurant_menu/internal/repository"
	"restaurant_menu/pkg/telegram"
)

var (
	ErrBotNotConfigured      = errors.New("feedback bot not configured")
	ErrFeedbackNotConfigured = errors.New("restaurant not configured for feedback")
)

type Feedback struct {
	RestaurantID string
	Rating       string
	Comment      string
	Photos       []telegram.Photo
}

type FeedbackService interface {
	SendFeedback(feedback Feedback) error
}

type feedbackService struct {
	restaurantRepo repository.RestaurantRepository
	bot            *telegram.Client
}

func NewFeedbackService(restaurantRepo repository.RestaurantRepository, bot *telegram.Client) FeedbackService {
	return &feedbackService{restaurantRepo: restaurantRepo, bot: bot}
}

// SendFeedback relays a diner's rating, comment and photos to the
// restaurant's configured chat. Up to three photos go out as a single
// message, photo or album depending on count.
func (s *feedbackService) SendFeedback(feedback Feedback) error {
	if s.bot == nil || !s.bot.Configured() {
		return ErrBotNotConfigured
	}

	restaurant, err := s.restaurantRepo.GetByID(feedback.RestaurantID)
	if err != nil {
		return fmt.Errorf("failed to load restaurant: %w", err)
	}
	if restaurant.TelegramChatID == "" {
		return ErrFeedbackNotConfigured
	}

	rating := feedback.Rating
	if rating == "" {
		rating = "N/A"
	}

	caption := fmt.Sprintf("<b>Рейтинг пользователя:</b> %s/5⭐", telegram.EscapeHTML(rating))
	if feedback.Comment != "" {
		caption += fmt.Sprintf("\n<b>Отзыв пользователя:</b>\n<blockquote>%s</blockquote>", telegram.EscapeHTML(feedback.Comment))
	}

	chatID := restaurant.TelegramChatID
	switch len(feedback.Photos) {
	case 0:
		return s.bot.SendMessage(chatID, caption)
	case 1:
		return s.bot.SendPhoto(chatID, feedback.Photos[0], caption)
	default:
		return s.bot.SendMediaGroup(chatID, feedback.Photos, caption)
	}
}
