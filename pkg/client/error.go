package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	httputil "github.com/soapboxsocial/stories/pkg/http"
	"github.com/soapboxsocial/stories/pkg/stories"
)

// APIError is a non 2xx response from the story API.
type APIError struct {
	StatusCode int                `json:"-"`
	Code       httputil.ErrorCode `json:"code"`
	Message    string             `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %d: %s", e.StatusCode, e.Code, e.Message)
}

// Is lets callers compare API errors against the story error sentinels.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == stories.ErrUnauthorized
	case http.StatusNotFound:
		return target == stories.ErrNotFound
	case http.StatusConflict:
		return target == stories.ErrConflict
	case http.StatusBadRequest:
		return target == stories.ErrInvalid
	case http.StatusServiceUnavailable:
		return target == stories.ErrUnavailable
	default:
		return false
	}
}

func parseError(resp *resty.Response) error {
	apiErr := &APIError{}

	err := json.Unmarshal(resp.Body(), apiErr)
	if err != nil {
		apiErr.Message = string(resp.Body())
	}

	apiErr.StatusCode = resp.StatusCode()
	return apiErr
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return parseError(resp)
	}

	return nil
}
