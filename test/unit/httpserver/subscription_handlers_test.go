package httpserver_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
	newsletterhttp "github.com/futureblog/newsletter/internal/infrastructure/httpserver"
	"github.com/futureblog/newsletter/test/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestServer(svc *mocks.SubscriptionServiceMock) *httptest.Server {
	deps := newsletterhttp.ServerDeps{
		SubscriptionService: svc,
		RateLimiterService:  &mocks.RateLimiterServiceMock{},
		HealthCheckers:      nil,
	}
	srv := newsletterhttp.NewServer(&newsletterhttp.ServerConfig{
		Host: "127.0.0.1", Port: "0",
		ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second,
	}, logrus.New(), deps)
	return httptest.NewServer(srv.Echo())
}

func postForm(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/subscriptions", "application/x-www-form-urlencoded", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestSubscribe_ValidFormReturns200(t *testing.T) {
	svc := &mocks.SubscriptionServiceMock{}
	ts := newTestServer(svc)
	defer ts.Close()

	resp := postForm(t, ts.URL, "name=andre&email=andre.heber%40gmx.net")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Empty(t, body)
}

func TestSubscribe_MissingFieldsReturn400(t *testing.T) {
	svc := &mocks.SubscriptionServiceMock{
		RegisterSubscriberFn: func(ctx context.Context, req *subscriber.SubscribeRequest) (*subscriber.Subscriber, error) {
			t.Fatal("service must not be reached when fields are missing")
			return nil, nil
		},
	}
	ts := newTestServer(svc)
	defer ts.Close()

	cases := []struct {
		body string
		desc string
	}{
		{"name=le%20guin", "missing the email"},
		{"email=ursula_le_guin%40gmail.com", "missing the name"},
		{"", "missing both name and email"},
	}
	for _, tc := range cases {
		resp := postForm(t, ts.URL, tc.body)
		resp.Body.Close()
		require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "payload was %s", tc.desc)
	}
}

func TestSubscribe_ValidationErrorsReturn400(t *testing.T) {
	svc := &mocks.SubscriptionServiceMock{
		RegisterSubscriberFn: func(ctx context.Context, req *subscriber.SubscribeRequest) (*subscriber.Subscriber, error) {
			return nil, fmt.Errorf("%w: bad input", subscriber.ErrInvalidEmail)
		},
	}
	ts := newTestServer(svc)
	defer ts.Close()

	resp := postForm(t, ts.URL, "name=Ursula&email=definitely-not-an-email")
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubscribe_PersistenceFailureReturns500(t *testing.T) {
	svc := &mocks.SubscriptionServiceMock{
		RegisterSubscriberFn: func(ctx context.Context, req *subscriber.SubscribeRequest) (*subscriber.Subscriber, error) {
			return nil, fmt.Errorf("%w: db down", subscriber.ErrPersistence)
		},
	}
	ts := newTestServer(svc)
	defer ts.Close()

	resp := postForm(t, ts.URL, "name=andre&email=andre.heber%40gmx.net")
	resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestConfirm_MissingTokenReturns400(t *testing.T) {
	ts := newTestServer(&mocks.SubscriptionServiceMock{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/subscriptions/confirm")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConfirm_UnknownTokenReturns401(t *testing.T) {
	svc := &mocks.SubscriptionServiceMock{
		ConfirmSubscriptionFn: func(ctx context.Context, token string) error {
			return subscriber.ErrTokenNotFound
		},
	}
	ts := newTestServer(svc)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/subscriptions/confirm?subscription_token=bogus")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestConfirm_ValidTokenReturns200(t *testing.T) {
	var confirmed string
	svc := &mocks.SubscriptionServiceMock{
		ConfirmSubscriptionFn: func(ctx context.Context, token string) error {
			confirmed = token
			return nil
		},
	}
	ts := newTestServer(svc)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/subscriptions/confirm?subscription_token=aaaaabbbbbcccccdddddeeeee")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "aaaaabbbbbcccccdddddeeeee", confirmed)
}

func TestHealthCheck_Returns200EmptyBody(t *testing.T) {
	ts := newTestServer(&mocks.SubscriptionServiceMock{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health_check")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Empty(t, body)
}
