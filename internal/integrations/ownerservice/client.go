package ownerservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const contactPath = "/internal/contact-requests"

// Client клиент сервиса владельцев
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента.
// Пустой baseURL означает, что запросы только логируются.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled сообщает, настроен ли адрес сервиса
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// SendContactRequest передает владельцу запрос на связь.
// Возвращает false, если сервис не настроен и запрос только записан в лог.
func (c *Client) SendContactRequest(ctx context.Context, contact ContactRequest) (bool, error) {
	if !c.Enabled() {
		c.log.Info("Owner service is not configured, contact request logged: owner=%s, item=%s, user=%d",
			contact.OwnerID, contact.ItemID, contact.UserID)
		return false, nil
	}

	body, err := json.Marshal(contact)
	if err != nil {
		return false, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactPath, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		c.log.Info("Contact request delivered: owner=%s, item=%s, user=%d", contact.OwnerID, contact.ItemID, contact.UserID)
		return true, nil
	case http.StatusNotFound:
		return false, ErrOwnerNotFound
	default:
		var errResp ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
			return false, fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Message)
		}
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}
