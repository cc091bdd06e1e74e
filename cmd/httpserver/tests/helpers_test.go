//go:build integration

package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/cash-card/cmd/httpserver"
	"github.com/go-petr/cash-card/internal/domain"
	"github.com/go-petr/cash-card/internal/integrationtest"
	"github.com/go-petr/cash-card/internal/middleware"
	"github.com/go-petr/cash-card/pkg/tokenpkg"
	"github.com/go-petr/cash-card/pkg/web"

	_ "github.com/lib/pq"
)

const configPath = "../../../configs"

type client struct {
	t      *testing.T
	server *httpserver.Server
	maker  tokenpkg.Maker
}

func newClient(t *testing.T) *client {
	t.Helper()

	server := integrationtest.SetupServer(t, configPath)

	maker, err := tokenpkg.New(server.Config.TokenType, server.Config.TokenSymmetricKey)
	require.NoError(t, err)

	return &client{t: t, server: server, maker: maker}
}

// do sends the request as username, or anonymously when username is empty.
func (c *client) do(method, url, username string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(c.t, err)

	if username != "" {
		d := c.server.Config.AccessTokenDuration
		require.NoError(c.t, middleware.AddAuthorization(req, c.maker, middleware.AuthTypeBearer, username, d))
	}

	recorder := httptest.NewRecorder()
	c.server.ServeHTTP(recorder, req)

	return recorder
}

type cashCardData struct {
	CashCard domain.CashCard `json:"cashcard"`
}

func decodeCashCard(t *testing.T, recorder *httptest.ResponseRecorder) domain.CashCard {
	t.Helper()

	var data cashCardData
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&web.Response{Data: &data}))

	return data.CashCard
}

func decodePage(t *testing.T, recorder *httptest.ResponseRecorder) domain.CashCardPage {
	t.Helper()

	var page domain.CashCardPage
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&web.Response{Data: &page}))

	return page
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var res web.Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))

	return res.Error
}
