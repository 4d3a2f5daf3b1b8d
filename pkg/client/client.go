// Package client talks to the story API on behalf of a signed in user.
package client

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/stories"
)

const prefix = "/v1/stories"

type Client struct {
	http *resty.Client
}

// New creates a client for the API at baseURL that authenticates with the session token.
func New(baseURL, token string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", token).
		SetHeader("User-Agent", "stories-cli")

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Log.Debug(
			"http response",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
		)
		return nil
	})

	return &Client{http: rc}
}

func (c *Client) ListVisibleStories(ctx context.Context) ([]*stories.Group, error) {
	result := make([]*stories.Group, 0)

	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Get(prefix + "/")
	err = check(resp, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) ListOwnerSegments(ctx context.Context, owner int) ([]*stories.Story, error) {
	result := make([]*stories.Story, 0)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetPathParam("id", strconv.Itoa(owner)).
		Get(prefix + "/users/{id}")

	err = check(resp, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) RecordView(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).Post(prefix + "/{id}/view")
	return check(resp, err)
}

func (c *Client) ToggleMute(ctx context.Context, owner int) (bool, error) {
	result := struct {
		Muted bool `json:"muted"`
	}{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetPathParam("id", strconv.Itoa(owner)).
		Post(prefix + "/mutes/{id}")

	err = check(resp, err)
	if err != nil {
		return false, err
	}

	return result.Muted, nil
}

func (c *Client) GetStoryViewSummary(ctx context.Context, id string) (*stories.ViewSummary, error) {
	result := &stories.ViewSummary{}

	resp, err := c.http.R().SetContext(ctx).SetResult(result).SetPathParam("id", id).Get(prefix + "/{id}/views")
	err = check(resp, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) GetMutedUsers(ctx context.Context) ([]int, error) {
	result := make([]int, 0)

	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Get(prefix + "/mutes")
	err = check(resp, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) GetViewedStoryIDs(ctx context.Context) ([]string, error) {
	result := make([]string, 0)

	resp, err := c.http.R().SetContext(ctx).SetResult(&result).Get(prefix + "/viewed")
	err = check(resp, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UploadStory posts an image as a new story.
func (c *Client) UploadStory(ctx context.Context, name string, image []byte) (*stories.Story, error) {
	result := &stories.Story{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetFileReader("image", name, bytes.NewReader(image)).
		Post(prefix + "/")

	err = check(resp, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) DeleteStory(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).Delete(prefix + "/{id}")
	return check(resp, err)
}
