package matcher

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "http://localhost:8000"
	userAgent     = "emr-dev1/resume-matcher"
)

// Client talks to the resume-matcher backend API. All heavy lifting
// (text extraction, embeddings, scoring) happens server-side; the client
// only moves data and observes processing jobs.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		ctx:    ctx,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// SetToken configures an optional bearer token sent with every request.
// The backend itself is unauthenticated; this exists for deployments
// fronted by a token gateway.
func (c *Client) SetToken(token string) {
	c.token = token
}
