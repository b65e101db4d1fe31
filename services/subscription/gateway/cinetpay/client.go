package cinetpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/afrikipresse/subscription-service/internal/pkg/logger"
	"github.com/afrikipresse/subscription-service/internal/pkg/models"
	nrpkg "github.com/afrikipresse/subscription-service/internal/pkg/newrelic"
	"github.com/afrikipresse/subscription-service/services/subscription"
)

const (
	// DefaultTimeout for gateway requests
	DefaultTimeout = 15 * time.Second

	// CodeCreated is the gateway's success code for session creation
	CodeCreated = "201"
	// CodeSuccess is the gateway's success code for status checks
	CodeSuccess = "00"
)

// Client is the CinetPay payment gateway HTTP client
type Client struct {
	httpClient *http.Client
	cfg        models.CinetPayConfig
}

// NewClient creates a new CinetPay client from configuration
func NewClient(cfg models.CinetPayConfig) *Client {
	timeout := DefaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
	}
}

// createSessionRequest is the wire format of the payment-creation call
type createSessionRequest struct {
	APIKey        string `json:"apikey"`
	SiteID        string `json:"site_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int    `json:"amount"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
	NotifyURL     string `json:"notify_url"`
	ReturnURL     string `json:"return_url"`
	Channels      string `json:"channels"`
	Metadata      string `json:"metadata"`

	CustomerName    string `json:"customer_name"`
	CustomerSurname string `json:"customer_surname"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone_number"`
	CustomerAddress string `json:"customer_address"`
	CustomerCity    string `json:"customer_city"`
	CustomerCountry string `json:"customer_country"`
	CustomerZip     string `json:"customer_zip_code"`
}

// checkRequest is the wire format of the verification call
type checkRequest struct {
	APIKey        string `json:"apikey"`
	SiteID        string `json:"site_id"`
	TransactionID string `json:"transaction_id"`
}

// gatewayResponse is the generic response envelope of the gateway
type gatewayResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionData struct {
	PaymentURL   string `json:"payment_url"`
	PaymentToken string `json:"payment_token"`
}

type checkData struct {
	Status        string      `json:"status"`
	Amount        json.Number `json:"amount"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"payment_method"`
	PaymentDate   string      `json:"payment_date"`
}

// CreatePaymentSession opens a hosted payment session and returns its URL
func (c *Client) CreatePaymentSession(ctx context.Context, params models.PaymentSessionParams) (string, error) {
	if c.cfg.APIKey == "" || c.cfg.SiteID == "" {
		return "", fmt.Errorf("%w: CinetPay credentials not configured", subscription.ErrConfiguration)
	}

	reqBody := createSessionRequest{
		APIKey:          c.cfg.APIKey,
		SiteID:          c.cfg.SiteID,
		TransactionID:   params.TransactionID,
		Amount:          params.Amount,
		Currency:        params.Currency,
		Description:     params.Description,
		NotifyURL:       c.cfg.NotifyURL,
		ReturnURL:       c.cfg.ReturnURL,
		Channels:        c.cfg.Channels,
		Metadata:        params.Metadata,
		CustomerName:    params.Customer.Name,
		CustomerSurname: params.Customer.Surname,
		CustomerEmail:   params.Customer.Email,
		CustomerPhone:   params.Customer.Phone,
		CustomerAddress: params.Customer.Address,
		CustomerCity:    params.Customer.City,
		CustomerCountry: params.Customer.Country,
		CustomerZip:     params.Customer.Zip,
	}

	var resp gatewayResponse
	if err := c.post(ctx, "/payment", reqBody, &resp); err != nil {
		return "", err
	}

	if resp.Code != CodeCreated {
		return "", subscription.NewGatewayError(resp.Code, resp.Message)
	}

	var data sessionData
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.PaymentURL == "" {
		return "", fmt.Errorf("gateway returned no payment url (code %s)", resp.Code)
	}

	logger.Debug("Payment session created at gateway",
		logger.String("transaction_id", params.TransactionID))

	return data.PaymentURL, nil
}

// CheckTransaction performs the authoritative server-to-server status query
func (c *Client) CheckTransaction(ctx context.Context, transactionID string) (*models.PaymentVerification, error) {
	if c.cfg.APIKey == "" || c.cfg.SiteID == "" {
		return nil, fmt.Errorf("%w: CinetPay credentials not configured", subscription.ErrConfiguration)
	}

	reqBody := checkRequest{
		APIKey:        c.cfg.APIKey,
		SiteID:        c.cfg.SiteID,
		TransactionID: transactionID,
	}

	var resp gatewayResponse
	if err := c.post(ctx, "/payment/check", reqBody, &resp); err != nil {
		return nil, err
	}

	if resp.Code != CodeSuccess {
		return nil, subscription.NewGatewayError(resp.Code, resp.Message)
	}

	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil, fmt.Errorf("%w: %s", subscription.ErrNotVerifiable, transactionID)
	}

	var data checkData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: malformed verification data", subscription.ErrNotVerifiable, transactionID)
	}
	if data.Status == "" {
		return nil, fmt.Errorf("%w: %s: verification carried no status", subscription.ErrNotVerifiable, transactionID)
	}

	amount := 0
	if data.Amount != "" {
		if v, err := data.Amount.Int64(); err == nil {
			amount = int(v)
		}
	}

	paymentDate := data.PaymentDate
	if ts, perr := models.ParseGatewayTime(data.PaymentDate); perr == nil {
		paymentDate = models.FormatTime(ts)
	}

	return &models.PaymentVerification{
		TransactionID: transactionID,
		Status:        data.Status,
		Amount:        amount,
		Currency:      data.Currency,
		PaymentMethod: data.PaymentMethod,
		PaymentDate:   paymentDate,
		Message:       resp.Message,
	}, nil
}

// post performs a JSON POST against the gateway and decodes the envelope
func (c *Client) post(ctx context.Context, endpoint string, body interface{}, out *gatewayResponse) error {
	url := c.cfg.BaseURL + endpoint

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create gateway request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("gateway unavailable: HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return nil
}
