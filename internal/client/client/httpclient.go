package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/endpoint"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/keychain"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
	"github.com/dmitrijs2005/pencilkeeper/internal/common"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// newBoundary is a test seam for the multipart boundary.
var newBoundary = uuid.NewString

// Config configures an HTTPClient. BaseURL and Tokens are required.
type Config struct {
	BaseURL    string
	Tokens     keychain.TokenStore
	Logger     logging.Logger
	HTTPClient *http.Client
	Timeout    time.Duration
}

type HTTPClient struct {
	baseURL string
	tokens  keychain.TokenStore
	log     logging.Logger
	http    *http.Client

	mu             sync.Mutex
	onUnauthorized []func()
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.Tokens == nil {
		return nil, errors.New("token store is required")
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  cfg.Tokens,
		log:     log.With("component", "transport"),
		http:    httpClient,
	}, nil
}

// OnUnauthorized registers fn to run after a 401 has evicted the token.
func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
}

func (c *HTTPClient) Do(ctx context.Context, ep endpoint.Endpoint, body any, out any) error {
	route := ep.Route()

	u, err := c.buildURL(route)
	if err != nil {
		return invalidRequest(err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return invalidRequest(fmt.Errorf("encode body: %w", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, u, reader)
	if err != nil {
		return invalidRequest(err)
	}
	req.Header.Set(common.HeaderContentType, common.MIMEApplicationJSON)
	req.Header.Set(common.HeaderAccept, common.MIMEApplicationJSON)
	c.authorize(req)

	return c.roundTrip(ctx, req, out)
}

func (c *HTTPClient) Upload(ctx context.Context, ep endpoint.Endpoint, image []byte, out any) error {
	route := ep.Route()

	u, err := c.buildURL(route)
	if err != nil {
		return invalidRequest(err)
	}

	body, contentType, err := proofBody(image)
	if err != nil {
		return invalidRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, u, bytes.NewReader(body))
	if err != nil {
		return invalidRequest(err)
	}
	req.Header.Set(common.HeaderContentType, contentType)
	req.Header.Set(common.HeaderAccept, common.MIMEApplicationJSON)
	c.authorize(req)

	return c.roundTrip(ctx, req, out)
}

// proofBody lays out the single "proof" part the server expects.
func proofBody(image []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(newBoundary()); err != nil {
		return nil, "", err
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, common.ProofFieldName, common.ProofFileName))
	h.Set(common.HeaderContentType, common.MIMEImageJPEG)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(image); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func (c *HTTPClient) buildURL(route endpoint.Route) (string, error) {
	u, err := url.Parse(c.baseURL + route.Path)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("incomplete URL %q", u.String())
	}
	if len(route.Query) > 0 {
		u.RawQuery = route.Query.Encode()
	}
	return u.String(), nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if token, ok := c.tokens.GetToken(); ok {
		req.Header.Set(common.HeaderAuthorization, common.BearerPrefix+token)
	}
}

func (c *HTTPClient) roundTrip(ctx context.Context, req *http.Request, out any) error {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return invalidResponse(err)
	}

	c.log.Debug(ctx, "request done",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return decodingError(resp.StatusCode, err)
		}
		if v, ok := out.(models.Validator); ok {
			if err := v.Validate(); err != nil {
				return decodingError(resp.StatusCode, err)
			}
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		c.evictToken(ctx)
		return unauthorized()

	default:
		return serverError(resp.StatusCode, errorMessage(resp.StatusCode, data))
	}
}

func (c *HTTPClient) evictToken(ctx context.Context) {
	if err := c.tokens.DeleteToken(); err != nil {
		c.log.Warn(ctx, "could not delete token after 401", "error", err)
	}

	c.mu.Lock()
	hooks := append([]func(){}, c.onUnauthorized...)
	c.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// errorMessage extracts the best message from a non-2xx body.
func errorMessage(status int, data []byte) string {
	fallback := fmt.Sprintf("Server error: %d", status)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fallback
	}

	var er models.ErrorResponse
	if err := json.Unmarshal(trimmed, &er); err != nil {
		return fallback
	}

	switch {
	case er.Error != nil:
		return *er.Error
	case er.Errors != nil:
		return strings.Join(er.Errors, ", ")
	default:
		return "Unknown error"
	}
}
