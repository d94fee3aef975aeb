package system

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

type ClientOptions struct {
	Host  string
	Token string
}

func URL(options ClientOptions, path string) string {
	return fmt.Sprintf("%s%s", strings.TrimRight(options.Host, "/"), path)
}

// WSURL rewrites an API URL to its websocket scheme, http -> ws and
// https -> wss.
func WSURL(options ClientOptions, path string) string {
	url := URL(options, path)
	if strings.HasPrefix(url, "http://") {
		return "ws" + url[4:]
	}
	return "wss" + url[5:]
}

type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPResponseError turns a non-2xx API response into an HTTPError,
// pulling the human message out of the backend's "detail" field. The
// backend returns detail either as a plain string or as a validation list;
// anything unparseable falls back to the raw body.
func NewHTTPResponseError(statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    extractDetail(statusCode, body),
	}
}

func extractDetail(statusCode int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return fmt.Sprintf("status code %d", statusCode)
	}

	var plain struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &plain); err == nil && plain.Detail != "" {
		return plain.Detail
	}

	var list struct {
		Detail []struct {
			Msg string `json:"msg"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(body, &list); err == nil && len(list.Detail) > 0 {
		msgs := make([]string, 0, len(list.Detail))
		for _, d := range list.Detail {
			if d.Msg != "" {
				msgs = append(msgs, d.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return fmt.Sprintf("status code %d (%s)", statusCode, trimmed)
}

func AddAuthHeadersRetryable(
	req *retryablehttp.Request,
	token string,
) error {
	if token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return nil
}

func AddAuthHeaders(
	req *http.Request,
	token string,
) error {
	if token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return nil
}

// NewRetryClient builds the HTTP client every API call goes through.
// Retries are limited to 5xx answers - auth and validation failures are
// final and must surface to the caller unchanged.
func NewRetryClient(retryMax int, tlsSkipVerify bool) *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax

	if tlsSkipVerify {
		retryClient.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	retryClient.Logger = stdlog.New(io.Discard, "", stdlog.LstdFlags)
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		log.Trace().
			Str(req.Method, req.URL.String()).
			Int("attempt", attempt).
			Msgf("")
	}
	retryClient.CheckRetry = func(_ context.Context, resp *http.Response, err error) (bool, error) {
		if resp == nil {
			return true, err
		}
		log.Trace().
			Str(resp.Request.Method, resp.Request.URL.String()).
			Int("code", resp.StatusCode).
			Msgf("")
		// don't retry for auth errors
		return resp.StatusCode >= 500, nil
	}
	return retryClient
}
