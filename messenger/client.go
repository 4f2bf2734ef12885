package messenger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/onurcolak/messenger-gateway/environments"
	"github.com/onurcolak/messenger-gateway/pkg/logger"
	"github.com/onurcolak/messenger-gateway/pkg/validator"
)

// Graph API paths, appended to the versioned base URL.
const (
	messagesPath         = "/me/messages"
	attachmentUploadPath = "/me/message_attachments"
	messengerProfilePath = "/me/messenger_profile"
)

// Client is a thin gateway over the Messenger Platform Send API and its
// adjacent profile endpoints. Every operation performs exactly one outbound
// call; the client holds no mutable state, so it is safe for concurrent use.
type Client struct {
	httpClient *resty.Client
	validate   *validator.CustomValidator
	apiVersion string
}

func New(cfg environments.GraphConfig) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, &ConfigurationError{
			Reason: "PAGE_ACCESS_TOKEN is required but not set",
		}
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetQueryParam("access_token", cfg.AccessToken)

	return &Client{
		httpClient: httpClient,
		validate:   validator.New(),
		apiVersion: cfg.APIVersion,
	}, nil
}

func (c *Client) path(p string) string {
	return "/" + c.apiVersion + p
}

// do performs one call and maps the outcome: transport failures and 5xx
// become TransportError, 4xx becomes RemoteRejectedError. There is no retry.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	payload, result any,
	query map[string]string,
) (*resty.Response, error) {
	reqID := uuid.NewString()

	req := c.httpClient.R().SetContext(ctx)
	if payload != nil {
		req.SetBody(payload)
	}
	if result != nil {
		req.SetResult(result)
	}
	if query != nil {
		req.SetQueryParams(query)
	}

	startTime := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(startTime)

	if err != nil {
		logger.Errorf("[%s] %s %s failed after %v: %v", reqID, method, path, duration, err)
		return nil, &TransportError{Cause: err}
	}

	logger.Infof("[%s] %s %s completed in %v (status: %d)", reqID, method, path, duration, resp.StatusCode())

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return nil, &TransportError{
			Cause: fmt.Errorf("remote service returned status %d: %s", resp.StatusCode(), resp.String()),
		}
	case resp.StatusCode() >= http.StatusBadRequest:
		return nil, &RemoteRejectedError{
			Status: resp.StatusCode(),
			Body:   resp.String(),
		}
	}

	return resp, nil
}

// send validates a payload variant, posts it and decodes the delivery
// answer. The raw body is passed through untouched next to the decoded ids.
func (c *Client) send(ctx context.Context, path string, payload any) (*DeliveryResult, error) {
	if err := c.validate.Validate(payload); err != nil {
		return nil, err
	}

	var result DeliveryResult
	resp, err := c.do(ctx, http.MethodPost, c.path(path), payload, &result, nil)
	if err != nil {
		return nil, err
	}

	result.Raw = resp.Body()
	return &result, nil
}
