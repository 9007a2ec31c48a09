package googlebooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booktracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key", 100)
	client.baseURL = server.URL
	return client
}

func intPtr(i int) *int { return &i }

func TestClient_Search(t *testing.T) {
	const payload = `{
		"items": [
			{
				"volumeInfo": {
					"title": "X",
					"authors": ["A", "B"],
					"publishedDate": "2001-05-01",
					"industryIdentifiers": [
						{"type": "ISBN_10", "identifier": "123"}
					]
				}
			}
		]
	}`

	var gotQuery, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})

	results, err := client.Search(context.Background(), "dune")
	require.NoError(t, err)

	assert.Equal(t, "dune", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, results, 1)
	assert.Equal(t, entity.SearchResult{
		ISBN:            "ISBN_10: 123",
		Title:           "X",
		Author:          "A, B",
		PublicationYear: intPtr(2001),
	}, results[0])
}

func TestClient_Search_EmptyVolumeInfo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [{"volumeInfo": {}}]}`))
	})

	results, err := client.Search(context.Background(), "anything")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, entity.SearchResult{
		ISBN:            "",
		Title:           "",
		Author:          "",
		PublicationYear: nil,
	}, results[0])
}

func TestClient_Search_NoItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind": "books#volumes", "totalItems": 0}`))
	})

	results, err := client.Search(context.Background(), "no such book")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_Search_UpstreamError(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>not json</html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.Search(context.Background(), "dune")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnavailable))
		})
	}
}

func TestClient_Search_ConnectionRefused(t *testing.T) {
	client := NewClient("test-key", 100)
	client.baseURL = "http://127.0.0.1:1"

	_, err := client.Search(context.Background(), "dune")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name string
		date string
		want *int
	}{
		{name: "full date", date: "2001-05-01", want: intPtr(2001)},
		{name: "year only", date: "1987", want: intPtr(1987)},
		{name: "short numeric prefix", date: "200", want: intPtr(200)},
		{name: "empty", date: "", want: nil},
		{name: "not a year", date: "n.d.", want: nil},
		{name: "leading text", date: "ca. 1920", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseYear(tt.date))
		})
	}
}

func TestNormalize_IdentifierJoin(t *testing.T) {
	res := volumesResponse{
		Items: []volumeItem{
			{
				VolumeInfo: volumeInfo{
					Title: "Dune",
					IndustryIdentifiers: []industryIdentifier{
						{Type: "ISBN_10", Identifier: "0441013597"},
						{Type: "ISBN_13", Identifier: "9780441013593"},
					},
				},
			},
		},
	}

	results := normalize(res)
	require.Len(t, results, 1)
	assert.Equal(t, "ISBN_10: 0441013597, ISBN_13: 9780441013593", results[0].ISBN)
}
