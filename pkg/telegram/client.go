package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	BotToken   string
	BaseURL    string
	HTTPClient *http.Client
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Photo is one uploaded image to relay.
type Photo struct {
	Filename string
	Data     []byte
}

func NewClient(botToken string) *Client {
	return &Client{
		BotToken: botToken,
		BaseURL:  "https://api.telegram.org",
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Configured() bool {
	return c.BotToken != ""
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.BaseURL, c.BotToken, method)
}

// SendMessage sends an HTML-formatted text message to a chat.
func (c *Client) SendMessage(chatID, text string) error {
	requestData := sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return fmt.Errorf("failed to marshal request data: %w", err)
	}

	req, err := http.NewRequest("POST", c.methodURL("sendMessage"), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// SendPhoto uploads a single photo with an HTML caption.
func (c *Client) SendPhoto(chatID string, photo Photo, caption string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	writer.WriteField("chat_id", chatID)
	writer.WriteField("caption", caption)
	writer.WriteField("parse_mode", "HTML")

	part, err := writer.CreateFormFile("photo", safeFilename(photo.Filename))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(photo.Data); err != nil {
		return fmt.Errorf("failed to write photo data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequest("POST", c.methodURL("sendPhoto"), &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// SendMediaGroup uploads several photos as one album. The caption is
// attached to the first photo, which is how albums carry text.
func (c *Client) SendMediaGroup(chatID string, photos []Photo, caption string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	writer.WriteField("chat_id", chatID)

	type inputMedia struct {
		Type      string `json:"type"`
		Media     string `json:"media"`
		Caption   string `json:"caption,omitempty"`
		ParseMode string `json:"parse_mode,omitempty"`
	}

	media := make([]inputMedia, len(photos))
	for i, photo := range photos {
		field := fmt.Sprintf("photo_%d", i)
		media[i] = inputMedia{
			Type:  "photo",
			Media: "attach://" + field,
		}
		if i == 0 {
			media[i].Caption = caption
			media[i].ParseMode = "HTML"
		}

		part, err := writer.CreateFormFile(field, safeFilename(photo.Filename))
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(photo.Data); err != nil {
			return fmt.Errorf("failed to write photo data: %w", err)
		}
	}

	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("failed to marshal media list: %w", err)
	}
	writer.WriteField("media", string(mediaJSON))

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequest("POST", c.methodURL("sendMediaGroup"), &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var response apiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if !response.OK {
		return fmt.Errorf("telegram API error: %s", response.Description)
	}
	return nil
}

// safeFilename strips characters Telegram rejects and guarantees an
// extension.
func safeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := b.String()
	if !strings.Contains(cleaned, ".") {
		cleaned += ".jpg"
	}
	return cleaned
}

// EscapeHTML escapes user text for Telegram's HTML parse mode.
func EscapeHTML(unsafe string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	return replacer.Replace(unsafe)
}
