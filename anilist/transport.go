// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anisan-cli/anilist/log"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxErrorBody caps how much of an undecodable body is kept on a DecodeError.
const maxErrorBody = 1 << 10

// graphqlRequest is the POST body of every query.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphqlResponse is the envelope of every answer.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Execute sends one query with its variables and returns the raw "data" member.
// It makes a single attempt; retry policy belongs to the caller.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if variables == nil {
		variables = map[string]any{}
	}

	jsonBody, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("anilist: encode request: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	entry := log.WithFields(logrus.Fields{
		"request":       uuid.NewString(),
		"authenticated": c.token != "",
	})
	entry.WithField("variables", variables).Debug("Sending request to Anilist")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Error("Anilist request failed")
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		entry.WithError(err).Error("Reading Anilist response failed")
		return nil, &NetworkError{Err: err}
	}

	entry = entry.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(started),
	})

	var response graphqlResponse
	if err := json.Unmarshal(body, &response); err != nil {
		entry.WithError(err).Error("Anilist returned a body that is not JSON")
		return nil, &DecodeError{Status: resp.StatusCode, Body: truncate(body, maxErrorBody), Err: err}
	}

	if len(response.Errors) > 0 {
		first := response.Errors[0]
		code := first.Status
		if code == 0 {
			code = resp.StatusCode
		}
		entry.WithField("error", first.Message).Error("Anilist returned GraphQL errors")
		return nil, &APIError{
			Message: first.Message,
			Code:    code,
			Status:  resp.StatusCode,
			Errors:  response.Errors,
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		entry.Error("Anilist returned status code " + http.StatusText(resp.StatusCode))
		return nil, &APIError{
			Message: http.StatusText(resp.StatusCode),
			Code:    resp.StatusCode,
			Status:  resp.StatusCode,
		}
	}

	entry.Debug("Got response from Anilist")
	return response.Data, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		b = b[:n]
	}
	return append([]byte(nil), b...)
}
