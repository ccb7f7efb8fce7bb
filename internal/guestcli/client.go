package guestcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	authDto "concierge/internal/domains/auth/model/dto"
	chatDto "concierge/internal/domains/chat/model/dto"
	submissionDto "concierge/internal/domains/submission/model/dto"
	"concierge/shared/constant"
	"concierge/shared/failure"
)

const defaultTimeout = 15 * time.Second

// Client talks to the concierge API on behalf of one guest.
type Client struct {
	HTTP        *http.Client
	BaseURL     string
	AccessToken string
	APIKey      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

type envelope[T any] struct {
	Data    *T      `json:"data"`
	Message *string `json:"message"`
	Error   *string `json:"error"`
}

func (c *Client) Login(ctx context.Context, email, password string) (authDto.LoginResponse, error) {
	var res authDto.LoginResponse

	err := c.do(ctx, http.MethodPost, "/v1/auth/login", nil, authDto.LoginRequest{Email: email, Password: password}, &res)

	return res, err
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, authDto.LogoutRequest{RefreshToken: refreshToken}, nil)
}

// Submit posts a guest request. The body user id is only honoured with an API key.
func (c *Client) Submit(ctx context.Context, req submissionDto.SubmitRequest) (submissionDto.SubmitResult, error) {
	var res submissionDto.SubmitResult

	err := c.do(ctx, http.MethodPost, "/v1/requests", nil, req, &res)

	return res, err
}

func (c *Client) Messages(ctx context.Context, page, limit int) (chatDto.GetMessagesResponse, error) {
	var res chatDto.GetMessagesResponse

	query := url.Values{}
	query.Set(constant.RequestParamPage, strconv.Itoa(page))
	query.Set(constant.RequestParamLimit, strconv.Itoa(limit))

	err := c.do(ctx, http.MethodGet, "/v1/chat/messages", query, nil, &res)

	return res, err
}

func (c *Client) SendMessage(ctx context.Context, req chatDto.SendMessageRequest) (chatDto.MessageResponse, error) {
	var res chatDto.MessageResponse

	err := c.do(ctx, http.MethodPost, "/v1/chat/messages", nil, req, &res)

	return res, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", constant.ContentTypeJSON)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if c.AccessToken != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.AccessToken)
	}

	if c.APIKey != constant.Empty {
		req.Header.Set(constant.RequestHeaderAPIKey, c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	decoded := envelope[json.RawMessage]{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := http.StatusText(resp.StatusCode)

		switch {
		case decoded.Error != nil:
			message = *decoded.Error
		case decoded.Message != nil:
			message = *decoded.Message
		}

		return &failure.Failure{Code: resp.StatusCode, Message: message}
	}

	if out == nil || decoded.Data == nil {
		return nil
	}

	if err := json.Unmarshal(*decoded.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}

	return nil
}
