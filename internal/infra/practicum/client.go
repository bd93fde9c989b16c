// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

const defaultHTTPTimeout = 30 * time.Second

// Client queries the homework review API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
	now        func() time.Time
}

func NewClient(endpoint, token string, logger *logrus.Entry) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
		now:        time.Now,
	}
}

// GetAPIAnswer fetches review records changed since fromDate and returns the
// decoded JSON body. A zero fromDate is replaced with the current time.
func (c *Client) GetAPIAnswer(ctx context.Context, fromDate int64) (any, error) {
	if fromDate == 0 {
		fromDate = c.now().Unix()
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &homework.TransportError{Endpoint: c.endpoint, Err: err}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &homework.TransportError{Endpoint: c.endpoint, Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	logCtx := c.logger.WithFields(logrus.Fields{"endpoint": c.endpoint, "from_date": fromDate})
	logCtx.Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logCtx.WithError(err).Error("Homework API request failed")
		return nil, &homework.TransportError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logCtx.WithField("status_code", resp.StatusCode).Error("Homework API returned unexpected status")
		return nil, &homework.APIResponseError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logCtx.WithError(err).Error("Failed to read homework API response")
		return nil, &homework.TransportError{Endpoint: c.endpoint, Err: err}
	}

	// The whole body must be a single JSON document, trailing data included.
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		logCtx.WithError(err).Error("Homework API returned a body that is not JSON")
		return nil, &homework.APIResponseError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}
	return payload, nil
}
