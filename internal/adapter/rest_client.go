package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Tanzeel8246/madrasa/internal/config"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/models"
)

const (
	restPrefix = "/rest/v1"
	authPrefix = "/auth/v1"
)

type restStore struct {
	client *resty.Client
	apiKey string

	mu     sync.RWMutex
	token  string
	tenant string

	logger *logger.Logger
}

// NewRESTStore constructs the REST implementation of [RemoteStore]. It
// normalises and validates the base URL from cfg.BaseURL, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// stores cfg.AccessToken when one is configured.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewRESTStore(cfg config.ClientRemote, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	store := &restStore{client: client, apiKey: cfg.APIKey, logger: log}
	if cfg.AccessToken != "" {
		store.SetToken(cfg.AccessToken)
	}

	return store, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests and remembers the
// tenant name carried in the token claims, used to stamp inserted rows.
func (r *restStore) SetToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = strings.TrimSpace(token)

	r.tenant = ""
	if session, err := sessionFromToken(r.token); err == nil {
		r.tenant = session.MadrasaName
	}
}

// Token implements [RemoteStore]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (r *restStore) Token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

func (r *restStore) tenantName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tenant
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignIn implements [RemoteStore]. It POSTs the credentials to the password
// grant endpoint, stores the returned access token via SetToken, and decodes
// the session from the token claims. Returns an error if the request fails or
// the credentials are rejected.
func (r *restStore) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	var result signInResponse

	resp, err := r.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result).
		Post(authPrefix + "/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: sign in request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := sessionFromToken(result.AccessToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in parse token: %w", err)
	}

	r.SetToken(result.AccessToken)
	return session, nil
}

// Ping implements [RemoteStore]. It issues a HEAD request against the row API
// root. Any answer from the server, including an error status, counts as
// reachable; only a transport-level failure is reported as [ErrUnavailable].
func (r *restStore) Ping(ctx context.Context) error {
	_, err := r.authedRequest(ctx).Head(restPrefix + "/")
	if err != nil {
		return fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}

	return nil
}

// SelectAll implements [RemoteStore]. It GETs every visible row of table and
// decodes the response into a slice of [models.Row].
func (r *restStore) SelectAll(ctx context.Context, table string) ([]models.Row, error) {
	resp, err := r.authedRequest(ctx).
		SetQueryParam("select", "*").
		Get(restPrefix + "/" + table)
	if err != nil {
		return nil, fmt.Errorf("%w: select %s request: %v", ErrUnavailable, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.Row
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode select %s response: %w", table, err)
	}

	return rows, nil
}

// Insert implements [RemoteStore]. It POSTs row to table with
// "Prefer: return=representation" and returns the stored row, including the
// server-assigned id and timestamps. Rows without an explicit madrasa_name
// are stamped with the tenant from the session token, matching what the
// server's row policies expect.
func (r *restStore) Insert(ctx context.Context, table string, row models.Row) (models.Row, error) {
	if tenant := r.tenantName(); tenant != "" {
		if _, ok := row["madrasa_name"]; !ok {
			stamped := make(models.Row, len(row)+1)
			for k, v := range row {
				stamped[k] = v
			}
			stamped["madrasa_name"] = tenant
			row = stamped
		}
	}

	resp, err := r.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		Post(restPrefix + "/" + table)
	if err != nil {
		return nil, fmt.Errorf("%w: insert %s request: %v", ErrUnavailable, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// the row API answers inserts with a single-element array
	var rows []models.Row
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode insert %s response: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert %s: empty representation", table)
	}

	return rows[0], nil
}

// Update implements [RemoteStore]. It PATCHes the record of table identified
// by id with the fields present in row, asking for the confirmed
// representation so callers can cache server-computed fields. The row API
// answers an unmatched id with an empty array, reported as a nil row.
func (r *restStore) Update(ctx context.Context, table string, id string, row models.Row) (models.Row, error) {
	resp, err := r.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		SetBody(row).
		Patch(restPrefix + "/" + table)
	if err != nil {
		return nil, fmt.Errorf("%w: update %s request: %v", ErrUnavailable, table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.Row
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode update %s response: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[0], nil
}

// Delete implements [RemoteStore]. It sends a DELETE request for the record
// of table identified by id. The row API answers 2xx even when no row matched,
// so deleting an already-removed record is not an error.
func (r *restStore) Delete(ctx context.Context, table string, id string) error {
	resp, err := r.authedRequest(ctx).
		SetQueryParam("id", "eq."+id).
		Delete(restPrefix + "/" + table)
	if err != nil {
		return fmt.Errorf("%w: delete %s request: %v", ErrUnavailable, table, err)
	}

	return mapHTTPError(resp)
}

func (r *restStore) request(ctx context.Context) *resty.Request {
	req := r.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if r.apiKey != "" {
		req.SetHeader("apikey", r.apiKey)
	}
	return req
}

func (r *restStore) authedRequest(ctx context.Context) *resty.Request {
	req := r.request(ctx)
	if token := r.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func sessionFromToken(tokenString string) (models.Session, error) {
	if tokenString == "" {
		return models.Session{}, errors.New("empty access token")
	}

	// signature verification is the server's job; the client only needs the
	// identity claims
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Session{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{
		UserID:      sub,
		AccessToken: tokenString,
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if meta, ok := claims["user_metadata"].(map[string]any); ok {
		if name, ok := meta["madrasa_name"].(string); ok {
			session.MadrasaName = name
		}
	}

	return session, nil
}
