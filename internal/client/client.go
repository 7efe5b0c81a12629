package client

import (
	"context"
	"crypto"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"code.superseriousbusiness.org/httpsig"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/commune/internal/config"
	"github.com/sidereusnuntius/commune/internal/federation"
)

var prefs = []httpsig.Algorithm{httpsig.RSA_SHA256}
var getHeaders = []string{httpsig.RequestTarget, "host", "date"}

// Fetcher dereferences remote JSON documents.
type Fetcher interface {
	// GetJSON fetches uri with the given Accept header and decodes the response body into v. Every failure,
	// including timeouts and non-success statuses, wraps federation.ErrFetch.
	GetJSON(ctx context.Context, uri, accept string, v any) error
}

// HttpClient is the server's outbound HTTP client. When built WithSigner, every request carries an HTTP
// signature made with the instance actor's key, which servers running in authorized fetch mode require.
type HttpClient struct {
	client  *resty.Client
	maxSize int64

	key         crypto.PrivateKey
	keyID       string
	getSigner   httpsig.Signer
	signerMutex sync.Mutex
}

type Option func(*HttpClient) error

// WithSigner makes the client sign its requests with key, advertised under keyID.
func WithSigner(key crypto.PrivateKey, keyID string) Option {
	return func(c *HttpClient) error {
		signer, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, getHeaders, httpsig.Signature, 3600)
		if err != nil {
			return err
		}
		c.key = key
		c.keyID = keyID
		c.getSigner = signer
		c.client.SetPreRequestHook(c.sign)
		return nil
	}
}

func New(cfg config.FederationConfig, hc *http.Client, opts ...Option) (*HttpClient, error) {
	c := &HttpClient{
		client: resty.NewWithClient(hc).
			SetTimeout(cfg.FetchTimeout).
			SetHeader("User-Agent", cfg.UserAgent),
		maxSize: cfg.MaxResponseSize,
	}
	if c.maxSize <= 0 {
		c.maxSize = 1 << 20
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *HttpClient) sign(_ *resty.Client, req *http.Request) error {
	c.signerMutex.Lock()
	defer c.signerMutex.Unlock()

	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	req.Header.Set("Host", req.URL.Host)
	if err := c.getSigner.SignRequest(c.key, c.keyID, req, nil); err != nil {
		log.Error().Err(err).Msg("error while signing request")
		return err
	}
	return nil
}

// Dereference fetches uri and returns the response body, bounded by the configured size limit.
func (c *HttpClient) Dereference(ctx context.Context, uri, accept string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return nil, fmt.Errorf("%w: not a fetchable url: %q", federation.ErrFetch, uri)
	}

	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", accept).
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", federation.ErrFetch, uri, err)
	}

	body := res.RawBody()
	defer body.Close()

	content, err := io.ReadAll(io.LimitReader(body, c.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", federation.ErrFetch, uri, err)
	}

	if code := res.StatusCode(); code < 200 || code >= 300 {
		log.Debug().Str("uri", uri).Int("status", code).Bytes("response", content).Msg("fetch error")
		return nil, fmt.Errorf("%w: %s: status %d", federation.ErrFetch, uri, code)
	}

	if int64(len(content)) > c.maxSize {
		return nil, fmt.Errorf("%w: %s: response larger than %d bytes", federation.ErrFetch, uri, c.maxSize)
	}
	return content, nil
}

func (c *HttpClient) GetJSON(ctx context.Context, uri, accept string, v any) error {
	content, err := c.Dereference(ctx, uri, accept)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("%w: %s: response body unmarshaling error: %w", federation.ErrFetch, uri, err)
	}
	return nil
}
