package plaidlink

import (
	"context"
	"fmt"
	"time"

	"github.com/plaid/plaid-go/v27/plaid"
)

const clientName = "Zarcaro APC"

var environments = map[string]plaid.Environment{
	"sandbox":     plaid.Sandbox,
	"development": plaid.Environment("https://development.plaid.com"),
	"production":  plaid.Production,
}

// LinkToken is the short-lived token the frontend hands to Plaid Link.
type LinkToken struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
	RequestID  string    `json:"request_id"`
}

// Provider generates link tokens and exchanges public tokens for persistent
// access tokens.
type Provider interface {
	CreateLinkToken(ctx context.Context, uid string) (*LinkToken, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (string, error)
}

// Client is the Plaid-backed Provider.
type Client struct {
	api *plaid.APIClient
}

var _ Provider = (*Client)(nil)

// NewClient builds a Plaid client for the given environment (sandbox,
// development or production).
func NewClient(clientID, secret, env string) (*Client, error) {
	host, ok := environments[env]
	if !ok {
		return nil, fmt.Errorf("PLAID_ENV must be one of sandbox, development, production (got %q)", env)
	}
	cfg := plaid.NewConfiguration()
	cfg.AddDefaultHeader("PLAID-CLIENT-ID", clientID)
	cfg.AddDefaultHeader("PLAID-SECRET", secret)
	cfg.UseEnvironment(host)
	return &Client{api: plaid.NewAPIClient(cfg)}, nil
}

// CreateLinkToken creates a link token scoped to the user for the auth
// product, US accounts.
func (c *Client) CreateLinkToken(ctx context.Context, uid string) (*LinkToken, error) {
	user := plaid.NewLinkTokenCreateRequestUser(uid)
	req := plaid.NewLinkTokenCreateRequest(clientName, "en", []plaid.CountryCode{plaid.COUNTRYCODE_US}, *user)
	req.SetProducts([]plaid.Products{plaid.PRODUCTS_AUTH})

	resp, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*req).Execute()
	if err != nil {
		return nil, err
	}
	return &LinkToken{
		LinkToken:  resp.GetLinkToken(),
		Expiration: resp.GetExpiration(),
		RequestID:  resp.GetRequestId(),
	}, nil
}

// ExchangePublicToken swaps the client-returned public token for the
// long-lived access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, error) {
	req := plaid.NewItemPublicTokenExchangeRequest(publicToken)
	resp, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*req).Execute()
	if err != nil {
		return "", err
	}
	return resp.GetAccessToken(), nil
}
