package fxprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrankfurterClient_FetchRate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2025-05-06", r.URL.Path)
		assert.Equal(t, "CAD", r.URL.Query().Get("from"))
		assert.Equal(t, "THB", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"amount":1.0,"base":"CAD","date":"2025-05-06","rates":{"THB":23.65}}`))
	}))
	defer server.Close()

	client := NewFrankfurterClient(server.URL, time.Second)
	date := time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)

	rate, err := client.FetchRate(context.Background(), date, "CAD", "THB")
	require.NoError(t, err)
	assert.Equal(t, "23.65", rate.String())
}

func TestFrankfurterClient_FetchRate_MissingQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"EUR":0.65}}`))
	}))
	defer server.Close()

	client := NewFrankfurterClient(server.URL, time.Second)

	_, err := client.FetchRate(context.Background(), time.Now(), "CAD", "THB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing quote currency THB")
}

func TestFrankfurterClient_FetchRate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewFrankfurterClient(server.URL, time.Second)

	_, err := client.FetchRate(context.Background(), time.Now(), "CAD", "XXX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFrankfurterClient_FetchRate_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":`))
	}))
	defer server.Close()

	client := NewFrankfurterClient(server.URL, time.Second)

	_, err := client.FetchRate(context.Background(), time.Now(), "CAD", "THB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFrankfurterClient_Name(t *testing.T) {
	assert.Equal(t, "frankfurter", NewFrankfurterClient("", 0).Name())
}
