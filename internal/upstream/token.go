// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package upstream

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/pasarela/internal/logging"
	"github.com/tomtom215/pasarela/internal/metrics"
)

// tokenExpirySkew is subtracted from the advertised lifetime so a token is
// never used right at its expiry.
const tokenExpirySkew = 60 * time.Second

// ErrAuthentication is wrapped when the token endpoint cannot be used.
var ErrAuthentication = errors.New("autenticación fallida")

// ClientCredentials is a TokenSource implementing the OAuth2 client
// credentials grant. The token is cached until shortly before it expires and
// concurrent refreshes collapse into a single call.
type ClientCredentials struct {
	client       *Client
	tokenURL     string
	clientID     string
	clientSecret string

	mu      sync.Mutex
	token   string
	expires time.Time

	group singleflight.Group
	now   func() time.Time
}

// NewClientCredentials creates a token source that POSTs to tokenURL using
// client. The client must not itself carry an Auth source.
func NewClientCredentials(client *Client, tokenURL, clientID, clientSecret string) *ClientCredentials {
	return &ClientCredentials{
		client:       client,
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		now:          time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid access token, fetching a new one when needed.
func (c *ClientCredentials) Token(ctx context.Context) (string, error) {
	if token, ok := c.cached(); ok {
		return token, nil
	}

	// The fetch outlives any single caller so one cancelled request does
	// not fail the others waiting on the same refresh.
	ch := c.group.DoChan("token", func() (interface{}, error) {
		if token, ok := c.cached(); ok {
			return token, nil
		}
		return c.refresh(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Invalidate drops the cached token, forcing the next call to refresh.
func (c *ClientCredentials) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.expires = time.Time{}
	c.mu.Unlock()
}

func (c *ClientCredentials) cached() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.expires) {
		return c.token, true
	}
	return "", false
}

func (c *ClientCredentials) refresh(ctx context.Context) (string, error) {
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	header := http.Header{}
	header.Set("Authorization", "Basic "+basic)

	var resp tokenResponse
	err := c.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   c.tokenURL,
		Form:   url.Values{"grant_type": {"client_credentials"}},
		Header: header,
		NoAuth: true,
	}, &resp)
	if err == nil && resp.AccessToken == "" {
		err = fmt.Errorf("respuesta sin access_token")
	}
	metrics.RecordTokenRefresh(c.client.Name(), err)
	if err != nil {
		logging.Ctx(ctx).Error().Str("upstream", c.client.Name()).Err(err).Msg("token refresh failed")
		return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	lifetime := time.Duration(resp.ExpiresIn)*time.Second - tokenExpirySkew
	if lifetime < 0 {
		lifetime = 0
	}

	c.mu.Lock()
	c.token = resp.AccessToken
	c.expires = c.now().Add(lifetime)
	c.mu.Unlock()

	logging.Ctx(ctx).Debug().Str("upstream", c.client.Name()).Dur("lifetime", lifetime).Msg("token refreshed")
	return resp.AccessToken, nil
}
