package scim

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xfusion-digital/scimport/pkg/domain/model"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
)

const contentTypeSCIM = "application/scim+json"

// responses are small, but an error body from a misconfigured base URL
// could be an arbitrary HTML page
const maxResponseBody = 1 << 20

// CreatedUser is the directory's view of a freshly created user
type CreatedUser struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
}

// Client issues user-creation requests against a SCIM 2.0 directory
type Client struct {
	baseURL    string
	enterprise string
	token      string
	mapping    model.RoleMapping
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithEnterprise switches the endpoint to the enterprise-scoped path
// used by GitHub Enterprise ("/scim/v2/enterprises/{slug}/Users")
func WithEnterprise(slug string) Option {
	return func(c *Client) {
		c.enterprise = slug
	}
}

// WithRoleMapping sets the payload shape for roles
func WithRoleMapping(m model.RoleMapping) Option {
	return func(c *Client) {
		c.mapping = m
	}
}

// WithTimeout bounds each request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a SCIM client for the directory at baseURL
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		mapping:    model.DefaultRoleMapping(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// usersURL resolves the user-creation endpoint against the base URL
func (c *Client) usersURL() (*url.URL, error) {
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, goerr.Wrap(err, "invalid base URL",
			goerr.V("url", c.baseURL),
			goerr.T(types.ErrTagInput))
	}

	path := "scim/v2/Users"
	if c.enterprise != "" {
		path = "scim/v2/enterprises/" + url.PathEscape(c.enterprise) + "/Users"
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid endpoint path",
			goerr.V("path", path),
			goerr.T(types.ErrTagInput))
	}

	return base.ResolveReference(ref), nil
}

// CreateUser POSTs one user resource. It returns the HTTP status code
// alongside the result so callers can record it even on rejection: a
// non-2xx response yields an api-tagged error, a transport failure a
// network-tagged one.
func (c *Client) CreateUser(ctx context.Context, rec *model.UserRecord) (*CreatedUser, int, error) {
	uri, err := c.usersURL()
	if err != nil {
		return nil, 0, err
	}

	payload := BuildPayload(rec, c.mapping)
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to encode SCIM payload",
			goerr.V("userName", rec.UserName))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri.String(), bytes.NewReader(body))
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to build SCIM request",
			goerr.V("url", uri.String()))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentTypeSCIM)
	req.Header.Set("Accept", contentTypeSCIM)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, goerr.Wrap(err, "SCIM request failed",
			goerr.V("userName", rec.UserName),
			goerr.T(types.ErrTagNetwork))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, resp.StatusCode, goerr.Wrap(err, "failed to read SCIM response",
			goerr.V("userName", rec.UserName),
			goerr.T(types.ErrTagNetwork))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, goerr.New("SCIM user creation rejected",
			goerr.V("userName", rec.UserName),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", strings.TrimSpace(string(respBody))),
			goerr.T(types.ErrTagAPI))
	}

	created := &CreatedUser{}
	if len(respBody) > 0 {
		// a missing or non-JSON body on 2xx is tolerated; the create
		// already happened and the resource id is best-effort
		_ = json.Unmarshal(respBody, created)
	}
	if created.UserName == "" {
		created.UserName = rec.UserName
	}
	return created, resp.StatusCode, nil
}
