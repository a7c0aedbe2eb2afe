package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/wvwvw5/neuro-store/internal/domain"
	"github.com/wvwvw5/neuro-store/internal/ports"
)

const (
	apiPrefix       = "/api/v1"
	maxResponseSize = 1 << 20
	userAgent       = "neuro/cli"
)

// Client talks to the remote Neuro Store API. It owns no state besides
// the base URL; the bearer session is passed per call.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ ports.StoreGateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Session{}, fmt.Errorf("create login request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("User-Agent", userAgent)

	var payload tokenDTO
	if err := c.do(request, &payload); err != nil {
		return domain.Session{}, err
	}

	return domain.Session{AccessToken: payload.AccessToken, TokenType: payload.TokenType}, nil
}

func (c *Client) Register(ctx context.Context, registration domain.Registration) (domain.User, error) {
	body := registerDTO{
		Email:     registration.Email,
		Password:  registration.Password,
		FirstName: registration.FirstName,
		LastName:  registration.LastName,
	}
	if registration.Phone != "" {
		body.Phone = &registration.Phone
	}

	var payload userDTO
	if err := c.postJSON(ctx, "/auth/register", domain.Session{}, body, &payload); err != nil {
		return domain.User{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) Roles(ctx context.Context, session domain.Session) (domain.Roles, error) {
	var payload rolesDTO
	if err := c.getJSON(ctx, "/auth/me/roles", session, &payload); err != nil {
		return domain.Roles{}, err
	}

	return domain.Roles{IsAdmin: payload.IsAdmin}, nil
}

func (c *Client) Me(ctx context.Context, session domain.Session) (domain.User, error) {
	var payload userDTO
	if err := c.getJSON(ctx, "/auth/me", session, &payload); err != nil {
		return domain.User{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var payload []productDTO
	if err := c.getJSON(ctx, "/products/", domain.Session{}, &payload); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(payload))
	for _, dto := range payload {
		products = append(products, dto.toDomain())
	}

	return products, nil
}

func (c *Client) ProductPlans(ctx context.Context, productID domain.ProductID) ([]domain.Plan, error) {
	var payload []planDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d/plans", productID), domain.Session{}, &payload); err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(payload))
	for _, dto := range payload {
		plans = append(plans, dto.toDomain())
	}

	return plans, nil
}

func (c *Client) Subscribe(ctx context.Context, session domain.Session, productID domain.ProductID, planID domain.PlanID) (domain.Subscription, error) {
	body := subscribeDTO{ProductID: int64(productID), PlanID: int64(planID)}

	var payload subscriptionDTO
	if err := c.postJSON(ctx, "/subscriptions/", session, body, &payload); err != nil {
		return domain.Subscription{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) Subscriptions(ctx context.Context, session domain.Session) ([]domain.Subscription, error) {
	var payload []subscriptionDTO
	if err := c.getJSON(ctx, "/subscriptions/", session, &payload); err != nil {
		return nil, err
	}

	subscriptions := make([]domain.Subscription, 0, len(payload))
	for _, dto := range payload {
		subscriptions = append(subscriptions, dto.toDomain())
	}

	return subscriptions, nil
}

func (c *Client) AdminProbe(ctx context.Context, session domain.Session) error {
	return c.getJSON(ctx, "/admin/protected-route", session, nil)
}

func (c *Client) AdminStatistics(ctx context.Context, session domain.Session) (domain.Statistics, error) {
	var payload statisticsDTO
	if err := c.getJSON(ctx, "/admin/statistics", session, &payload); err != nil {
		return domain.Statistics{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) AdminUsers(ctx context.Context, session domain.Session) ([]domain.User, error) {
	var payload []userDTO
	if err := c.getJSON(ctx, "/admin/users", session, &payload); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(payload))
	for _, dto := range payload {
		users = append(users, dto.toDomain())
	}

	return users, nil
}

func (c *Client) Balance(ctx context.Context, session domain.Session) (float64, error) {
	var payload balanceDTO
	if err := c.getJSON(ctx, "/balance", session, &payload); err != nil {
		return 0, err
	}

	return payload.Balance, nil
}

func (c *Client) TopUpBalance(ctx context.Context, session domain.Session, request domain.PaymentRequest) (domain.PaymentID, error) {
	body := topUpDTO{
		Amount:      request.Amount,
		CardNumber:  request.CardNumber,
		CardHolder:  request.CardHolder,
		ExpiryMonth: request.ExpiryMonth,
		ExpiryYear:  request.ExpiryYear,
		CVV:         request.CVV,
	}
	if request.Phone != "" {
		body.Phone = &request.Phone
	}

	var payload topUpResponseDTO
	if err := c.postJSON(ctx, "/topup-balance", session, body, &payload); err != nil {
		return 0, err
	}

	return domain.PaymentID(payload.PaymentID), nil
}

func (c *Client) VerifyPayment(ctx context.Context, session domain.Session, paymentID domain.PaymentID, code string) (domain.Receipt, error) {
	body := verifyPaymentDTO{PaymentID: int64(paymentID), VerificationCode: code}

	var payload paymentStatusDTO
	if err := c.postJSON(ctx, "/verify-payment", session, body, &payload); err != nil {
		return domain.Receipt{}, err
	}

	return domain.Receipt{
		Message:    payload.Message,
		NewBalance: payload.NewBalance,
		PaymentID:  domain.PaymentID(payload.PaymentID),
	}, nil
}

func (c *Client) Health(ctx context.Context) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return "", fmt.Errorf("create health request: %w", err)
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := c.http.Do(request)
	if err != nil {
		return "", fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", statusError(response.StatusCode, raw)
	}

	return strings.TrimSpace(string(raw)), nil
}

func (c *Client) getJSON(ctx context.Context, path string, session domain.Session, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+apiPrefix+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	c.prepare(request, session)

	return c.do(request, out)
}

func (c *Client) postJSON(ctx context.Context, path string, session domain.Session, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	c.prepare(request, session)

	return c.do(request, out)
}

func (c *Client) prepare(request *http.Request, session domain.Session) {
	request.Header.Set("User-Agent", userAgent)
	if !session.IsZero() {
		request.Header.Set("Authorization", session.AuthorizationHeader())
	}
}

func (c *Client) do(request *http.Request, out any) error {
	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return statusError(response.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

// statusError maps the remote status into the client error taxonomy:
// 401 means the stored session is no longer valid, 403 means the user
// lacks the required role, anything else surfaces the server's detail
// message verbatim.
func statusError(statusCode int, body []byte) error {
	detail := detailMessage(body)

	switch statusCode {
	case http.StatusUnauthorized:
		if detail != "" {
			return fmt.Errorf("%w: %s", domain.ErrSessionExpired, detail)
		}
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		if detail != "" {
			return fmt.Errorf("%w: %s", domain.ErrAccessDenied, detail)
		}
		return domain.ErrAccessDenied
	default:
		return &domain.APIError{StatusCode: statusCode, Detail: detail}
	}
}

func detailMessage(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	return strings.TrimSpace(string(body))
}
