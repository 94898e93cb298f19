// SPDX-License-Identifier: Apache-2.0

// Package client is the Go API client for a go-folio server, intended for
// downstream tooling that drives the REST API programmatically.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avetrin/go-folio/models"
	"github.com/go-resty/resty/v2"
)

// Client talks to one go-folio server. It holds the bearer token obtained
// from Register or Login and attaches it to every owner-scoped request.
//
// Client is safe for concurrent use.
type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewClient builds a Client talking to baseURL. A missing scheme defaults
// to http; a non-positive timeout defaults to 15 seconds.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout)

	return &Client{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type registerPayload struct {
	FullName string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and captures the issued bearer token.
func (c *Client) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	payload := registerPayload{
		FullName: user.FullName,
		Username: user.Username,
		Email:    user.Email,
		Password: password,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	var registered models.User
	if err = json.Unmarshal(resp.Body(), &registered); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	if token, err := parseBearerToken(resp.Header().Get("Authorization")); err == nil {
		c.SetToken(token)
	}

	return registered, nil
}

// Login authenticates with email and password and captures the issued
// bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginPayload{Email: email, Password: password}).
		Post("/api/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	c.SetToken(token)

	return user, nil
}

// Portfolio fetches the aggregated public view of one portfolio. No token
// is required.
func (c *Client) Portfolio(ctx context.Context, username string) (models.Portfolio, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/portfolio/" + url.PathEscape(username))
	if err != nil {
		return models.Portfolio{}, fmt.Errorf("portfolio request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Portfolio{}, err
	}

	var portfolio models.Portfolio
	if err = json.Unmarshal(resp.Body(), &portfolio); err != nil {
		return models.Portfolio{}, fmt.Errorf("decode portfolio response: %w", err)
	}

	return portfolio, nil
}

// SubmitContact leaves a visitor message for the given username. No token
// is required.
func (c *Client) SubmitContact(ctx context.Context, username string, message models.ContactMessage) (models.ContactMessage, error) {
	payload := struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Message  string `json:"message"`
	}{username, message.Name, message.Email, message.Message}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/contact")
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("contact request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.ContactMessage{}, err
	}

	var created models.ContactMessage
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.ContactMessage{}, fmt.Errorf("decode contact response: %w", err)
	}

	return created, nil
}

// ListSkills returns the authenticated account's skills.
func (c *Client) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return listRecords[models.Skill](ctx, c, "/api/skills")
}

// CreateSkill adds a skill to the authenticated account.
func (c *Client) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	return createRecord(ctx, c, "/api/skills", skill)
}

// UpdateSkill replaces an owned skill.
func (c *Client) UpdateSkill(ctx context.Context, id int64, skill models.Skill) (models.Skill, error) {
	return updateRecord(ctx, c, "/api/skills", id, skill)
}

// DeleteSkill removes an owned skill.
func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	return deleteRecord(ctx, c, "/api/skills", id)
}

// ListExperiences returns the authenticated account's experience entries.
func (c *Client) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	return listRecords[models.Experience](ctx, c, "/api/experiences")
}

// CreateExperience adds an experience entry.
func (c *Client) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	return createRecord(ctx, c, "/api/experiences", experience)
}

// UpdateExperience replaces an owned experience entry.
func (c *Client) UpdateExperience(ctx context.Context, id int64, experience models.Experience) (models.Experience, error) {
	return updateRecord(ctx, c, "/api/experiences", id, experience)
}

// DeleteExperience removes an owned experience entry.
func (c *Client) DeleteExperience(ctx context.Context, id int64) error {
	return deleteRecord(ctx, c, "/api/experiences", id)
}

// ListProjects returns the authenticated account's projects.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	return listRecords[models.Project](ctx, c, "/api/projects")
}

// CreateProject adds a project.
func (c *Client) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return createRecord(ctx, c, "/api/projects", project)
}

// UpdateProject replaces an owned project.
func (c *Client) UpdateProject(ctx context.Context, id int64, project models.Project) (models.Project, error) {
	return updateRecord(ctx, c, "/api/projects", id, project)
}

// DeleteProject removes an owned project.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return deleteRecord(ctx, c, "/api/projects", id)
}

// GetAbout fetches the authenticated account's about document.
func (c *Client) GetAbout(ctx context.Context) (models.About, error) {
	resp, err := c.authedRequest(ctx).Get("/api/about")
	if err != nil {
		return models.About{}, fmt.Errorf("about request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.About{}, err
	}

	var about models.About
	if err = json.Unmarshal(resp.Body(), &about); err != nil {
		return models.About{}, fmt.Errorf("decode about response: %w", err)
	}

	return about, nil
}

// PutAbout replaces the authenticated account's about document, creating it
// on first use.
func (c *Client) PutAbout(ctx context.Context, about models.About) (models.About, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(about).
		Put("/api/about")
	if err != nil {
		return models.About{}, fmt.Errorf("about request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.About{}, err
	}

	var saved models.About
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.About{}, fmt.Errorf("decode about response: %w", err)
	}

	return saved, nil
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func listRecords[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	resp, err := c.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var records []T
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return records, nil
}

func createRecord[T any](ctx context.Context, c *Client, path string, record T) (T, error) {
	var zero T

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post(path)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return zero, err
	}

	var created T
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return zero, fmt.Errorf("decode create response: %w", err)
	}

	return created, nil
}

func updateRecord[T any](ctx context.Context, c *Client, path string, id int64, record T) (T, error) {
	var zero T

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put(fmt.Sprintf("%s/%d", path, id))
	if err != nil {
		return zero, fmt.Errorf("update request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return zero, err
	}

	var updated T
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return zero, fmt.Errorf("decode update response: %w", err)
	}

	return updated, nil
}

func deleteRecord(ctx context.Context, c *Client, path string, id int64) error {
	resp, err := c.authedRequest(ctx).Delete(fmt.Sprintf("%s/%d", path, id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapAPIError(resp)
}

func parseBearerToken(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("malformed authorization header %q", header)
	}
	return parts[1], nil
}

// mapAPIError converts a non-2xx response into the matching client
// sentinel. The server's body is carried along for diagnostics.
func mapAPIError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, body)
	}
}
