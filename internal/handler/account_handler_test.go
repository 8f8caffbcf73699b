package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-service/internal/model"
)

func TestAccountListings(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/accounts/2/listings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	listings := decodeListings(t, rec)
	require.Len(t, listings, 1)
	assert.Equal(t, "Garden Tool Set", listings[0].Title)
	assert.Equal(t, uint(2), listings[0].AccountID)

	rec = doRequest(e, http.MethodGet, "/accounts/abc/listings", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown account is an empty list, not an error
	rec = doRequest(e, http.MethodGet, "/accounts/999/listings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeListings(t, rec))
}

func TestCurrentAccount(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/session/current-account", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var account model.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
	assert.Equal(t, uint(1), account.ID)
	assert.Equal(t, "Sarah_Gardens", account.Username)
}
