package router

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindQuery(t *testing.T) {
	type req struct {
		Q      string `json:"q"`
		Offset int    `json:"offset"`
		Limit  int    `json:"limit"`
		Active bool   `json:"active"`
	}

	r := httptest.NewRequest("GET", "/search?q=garden&offset=10&limit=5&active=true", nil)

	var got req
	require.NoError(t, bindQuery(r, &got))
	require.Equal(t, req{Q: "garden", Offset: 10, Limit: 5, Active: true}, got)
}

func TestBindQueryInvalidInt(t *testing.T) {
	type req struct {
		Offset int `json:"offset"`
	}

	r := httptest.NewRequest("GET", "/search?offset=ten", nil)

	var got req
	require.Error(t, bindQuery(r, &got))
}
