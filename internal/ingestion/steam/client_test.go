package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(apiURL, storeURL string) *Client {
	return NewClient("test-key",
		WithBaseURLs(apiURL, storeURL),
		WithDetailInterval(time.Millisecond),
	)
}

func TestFetchAppList_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/IStoreService/GetAppList/v1/", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_games"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		// No have_more_results key signals the last page.
		json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]any{
				"apps": []map[string]any{
					{"appid": 10, "name": "Counter-Strike"},
					{"appid": 220, "name": "Half-Life 2"},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	apps, err := client.FetchAppList(context.Background())

	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, int64(10), apps[0].AppID)
	assert.Equal(t, "Counter-Strike", apps[0].Name)
}

func TestFetchAppList_Paginates(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt32(&calls, 1)
		if call == 1 {
			assert.Equal(t, "0", r.URL.Query().Get("last_appid"))
			json.NewEncoder(w).Encode(map[string]any{
				"response": map[string]any{
					"apps":              []map[string]any{{"appid": 10, "name": "First"}},
					"have_more_results": true,
					"last_appid":        10,
				},
			})
			return
		}
		assert.Equal(t, "10", r.URL.Query().Get("last_appid"))
		json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]any{
				"apps": []map[string]any{{"appid": 20, "name": "Second"}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	apps, err := client.FetchAppList(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	require.Len(t, apps, 2)
	assert.Equal(t, int64(20), apps[1].AppID)
}

func TestFetchAppList_FirstPageFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	apps, err := client.FetchAppList(context.Background())

	assert.Nil(t, apps)
	require.Error(t, err)

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestFetchAppList_LaterPageFailureReturnsPartial(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			json.NewEncoder(w).Encode(map[string]any{
				"response": map[string]any{
					"apps":              []map[string]any{{"appid": 10, "name": "First"}},
					"have_more_results": true,
					"last_appid":        10,
				},
			})
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	apps, err := client.FetchAppList(context.Background())

	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, int64(10), apps[0].AppID)
}

func TestFetchAppDetails_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appdetails", r.URL.Path)
		assert.Equal(t, "730", r.URL.Query().Get("appids"))

		json.NewEncoder(w).Encode(map[string]any{
			"730": map[string]any{
				"success": true,
				"data":    map[string]any{"name": "Counter-Strike 2"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	payload, err := client.FetchAppDetails(context.Background(), 730)

	require.NoError(t, err)
	require.NotNil(t, payload)
	name, ok := payload["name"].(string)
	require.True(t, ok)
	assert.Equal(t, "Counter-Strike 2", name)
}

func TestFetchAppDetails_UnsuccessfulApp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"999": map[string]any{"success": false},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	payload, err := client.FetchAppDetails(context.Background(), 999)

	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestFetchAppDetails_MissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	payload, err := client.FetchAppDetails(context.Background(), 123)

	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestFetchAppDetails_InvalidDataShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"123": map[string]any{"success": true, "data": "not an object"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	payload, err := client.FetchAppDetails(context.Background(), 123)

	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestFetchAppDetails_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	payload, err := client.FetchAppDetails(context.Background(), 123)

	assert.Nil(t, payload)
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, netErr.Error(), "HTTP 429")
}

func TestFetchAppDetails_ThrottlesCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"1": {"success": true, "data": {"name": "x"}}}`)
	}))
	defer server.Close()

	interval := 50 * time.Millisecond
	client := NewClient("", WithBaseURLs(server.URL, server.URL), WithDetailInterval(interval))

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.FetchAppDetails(context.Background(), 1)
		require.NoError(t, err)
	}

	// First call is immediate, the next two each wait one interval.
	assert.GreaterOrEqual(t, time.Since(start), 2*interval)
}

func TestFetchAppDetails_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient("", WithBaseURLs(server.URL, server.URL), WithDetailInterval(time.Hour))

	// Burn the initial token so the next call must wait the full hour.
	_, err := client.FetchAppDetails(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.FetchAppDetails(ctx, 2)
	assert.Error(t, err)
}
