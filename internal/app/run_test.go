package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devnullvoid/shoptui/internal/config"
	"github.com/devnullvoid/shoptui/internal/ui/models"
	"github.com/devnullvoid/shoptui/pkg/catalog/testutils"
	"github.com/devnullvoid/shoptui/pkg/mockcatalog"
)

func newServer(t *testing.T, mode mockcatalog.Mode) (*httptest.Server, *mockcatalog.MockState) {
	t.Helper()

	state := mockcatalog.NewMockState()
	state.SetMode(mode)

	server := httptest.NewServer(mockcatalog.NewRouter(state))
	t.Cleanup(server.Close)

	return server, state
}

func testConfig(url string) *config.Config {
	cfg := &config.Config{ProductsURL: url, LogDir: ""}
	cfg.SetDefaults()

	return cfg
}

func TestRun_PlainAgainstMockCatalog(t *testing.T) {
	server, state := newServer(t, mockcatalog.ModeOK)

	var out bytes.Buffer
	err := Run(context.Background(), testConfig(server.URL+"/products"), Options{Stdout: &out, Category: "jewelery"})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[jewelery]")
	assert.Contains(t, text, "#5 ")
	assert.Contains(t, text, "#6 ")
	assert.NotContains(t, text, "#1 ")
	assert.Contains(t, text, "2 of 8 products")
	assert.Equal(t, 1, state.Requests())
}

func TestRun_PlainConnectivityMessage(t *testing.T) {
	for _, mode := range []mockcatalog.Mode{mockcatalog.ModeEmpty, mockcatalog.ModeFail, mockcatalog.ModeMalformed} {
		t.Run(string(mode), func(t *testing.T) {
			server, _ := newServer(t, mode)

			var out bytes.Buffer
			require.NoError(t, Run(context.Background(), testConfig(server.URL+"/products"), Options{Stdout: &out, Plain: true}))
			assert.Equal(t, models.EmptyMessage, strings.TrimSuffix(out.String(), "\n"))
		})
	}
}

func TestRun_UnreachableEndpoint(t *testing.T) {
	server, _ := newServer(t, mockcatalog.ModeOK)
	url := server.URL + "/products"
	server.Close()

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), testConfig(url), Options{Stdout: &out}))
	assert.Equal(t, "Please connect to the internet.\n", out.String())
}

func TestRun_UnknownLogLevel(t *testing.T) {
	server, state := newServer(t, mockcatalog.ModeOK)

	cfg := testConfig(server.URL + "/products")
	cfg.LogLevel = "chatty"

	var out bytes.Buffer
	err := Run(context.Background(), cfg, Options{Stdout: &out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.Empty(t, out.String())
	assert.Equal(t, 0, state.Requests())
}

func TestRun_InvalidEndpoint(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), testConfig("ftp://shop.example.com"), Options{Stdout: &out})

	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunPlain_LogsFailure(t *testing.T) {
	fetcher := &testutils.MockFetcher{}
	fetcher.On("FetchCatalog", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	log := testutils.NewTestLogger()
	var out bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), fetcher, &out, "electronics", log))

	assert.Equal(t, models.EmptyMessage+"\n", out.String())
	require.Len(t, log.Errors(), 1)
	assert.Contains(t, log.Errors()[0], "connection reset")
	fetcher.AssertExpectations(t)
}

func TestRunPlain_UnknownCategoryShowsAll(t *testing.T) {
	fetcher := &testutils.MockFetcher{}
	fetcher.On("FetchCatalog", mock.Anything).Return(testutils.SampleProducts(), nil).Once()

	log := testutils.NewTestLogger()
	var out bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), fetcher, &out, "garden", log))

	assert.Contains(t, out.String(), "3 of 3 products")
	assert.NotEmpty(t, log.InfoMessages)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

func TestRun_PlainMistypedPassThroughFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"category":"electronics","price":"free","title":5}]`))
	}))
	defer server.Close()

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), testConfig(server.URL), Options{Stdout: &out, Plain: true}))

	text := out.String()
	assert.NotContains(t, text, models.EmptyMessage)
	assert.Contains(t, text, "#1 ")
	assert.Contains(t, text, "price: free")
	assert.Contains(t, text, "title: 5")
	assert.Contains(t, text, "1 of 1 products")
}
