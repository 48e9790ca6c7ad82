package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant_menu/internal/models"
	"restaurant_menu/pkg/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path string
	body string
}

// fakeTelegramServer accepts any bot method and records what was called.
func fakeTelegramServer(t *testing.T, calls *[]recordedCall) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		*calls = append(*calls, recordedCall{path: r.URL.Path, body: string(body)})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
}

func newTestFeedbackService(t *testing.T, chatID string, calls *[]recordedCall) FeedbackService {
	server := fakeTelegramServer(t, calls)
	t.Cleanup(server.Close)

	bot := telegram.NewClient("test-token")
	bot.BaseURL = server.URL

	restaurantRepo := &mockRestaurantRepo{restaurants: map[string]models.Restaurant{
		"demo": {ID: "rest-1", Slug: "demo", Name: "Demo", TelegramChatID: chatID},
	}}
	return NewFeedbackService(restaurantRepo, bot)
}

func TestSendFeedbackRequiresConfiguredBot(t *testing.T) {
	restaurantRepo := &mockRestaurantRepo{restaurants: map[string]models.Restaurant{
		"demo": {ID: "rest-1", Slug: "demo", TelegramChatID: "-100"},
	}}

	svc := NewFeedbackService(restaurantRepo, nil)
	assert.ErrorIs(t, svc.SendFeedback(Feedback{RestaurantID: "rest-1"}), ErrBotNotConfigured)

	svc = NewFeedbackService(restaurantRepo, telegram.NewClient(""))
	assert.ErrorIs(t, svc.SendFeedback(Feedback{RestaurantID: "rest-1"}), ErrBotNotConfigured)
}

func TestSendFeedbackRequiresRestaurantChat(t *testing.T) {
	var calls []recordedCall
	svc := newTestFeedbackService(t, "", &calls)

	err := svc.SendFeedback(Feedback{RestaurantID: "rest-1", Rating: "5"})
	assert.ErrorIs(t, err, ErrFeedbackNotConfigured)
	assert.Empty(t, calls)
}

func TestSendFeedbackPicksMethodByPhotoCount(t *testing.T) {
	photo := telegram.Photo{Filename: "a.jpg", Data: []byte("jpeg-bytes")}

	tests := []struct {
		name       string
		photos     []telegram.Photo
		wantMethod string
	}{
		{"no photos", nil, "/bottest-token/sendMessage"},
		{"one photo", []telegram.Photo{photo}, "/bottest-token/sendPhoto"},
		{"album", []telegram.Photo{photo, photo}, "/bottest-token/sendMediaGroup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			svc := newTestFeedbackService(t, "-100200", &calls)

			err := svc.SendFeedback(Feedback{
				RestaurantID: "rest-1",
				Rating:       "4",
				Comment:      "tasty",
				Photos:       tt.photos,
			})
			require.NoError(t, err)

			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantMethod, calls[0].path)
			assert.Contains(t, calls[0].body, "-100200")
			assert.Contains(t, calls[0].body, "tasty")
		})
	}
}

func TestSendFeedbackCaption(t *testing.T) {
	var calls []recordedCall
	svc := newTestFeedbackService(t, "-100", &calls)

	// Ratings default to N/A and user text is escaped for HTML parse mode.
	err := svc.SendFeedback(Feedback{
		RestaurantID: "rest-1",
		Comment:      `nice <b>&</b> "cozy"`,
	})
	require.NoError(t, err)

	require.Len(t, calls, 1)

	var sent struct {
		ChatID    string `json:"chat_id"`
		Text      string `json:"text"`
		ParseMode string `json:"parse_mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(calls[0].body), &sent))

	assert.Equal(t, "-100", sent.ChatID)
	assert.Equal(t, "HTML", sent.ParseMode)
	assert.Contains(t, sent.Text, "N/A/5")
	assert.Contains(t, sent.Text, `nice &lt;b&gt;&amp;&lt;/b&gt; &quot;cozy&quot;`)
	assert.NotContains(t, sent.Text, "<b>&</b>")
}
