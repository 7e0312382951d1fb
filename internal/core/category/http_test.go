// Copyright (c) 2026 Caboomlog. All rights reserved.

package category_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caboomlog/backend/internal/core/category"
	"github.com/caboomlog/backend/internal/platform/middleware"
	"github.com/caboomlog/backend/internal/platform/sec"
)

// # Test Doubles

type stubVerifier map[string]string

func (tokens stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	userID, found := tokens[token]
	if !found {
		return nil, errors.New("unknown token")
	}
	return &sec.AuthClaims{UserID: userID}, nil
}

type ownerTable map[string]string

func (owners ownerTable) IsOwner(_ context.Context, userID, blogID string) (bool, error) {
	return owners[blogID] == userID, nil
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details []struct {
		Field string `json:"field"`
	} `json:"details"`
}

type apiFixture struct {
	*fixture
	router http.Handler
}

func newAPIFixture() *apiFixture {
	f := newFixture()

	handler := category.NewHandler(f.service, ownerTable{blog: "owner-1"})
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(stubVerifier{"owner-token": "owner-1", "guest-token": "guest-7"}))
	router.Mount("/api/v1/blogs/{blogID}/categories", handler.Routes())

	return &apiFixture{fixture: f, router: router}
}

func (api *apiFixture) do(t *testing.T, method, path, token, body string) (int, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	api.router.ServeHTTP(recorder, request)

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder.Code, decoded
}

const base = "/api/v1/blogs/caboom/categories"

// # Tests

/*
TestHTTP_CreateAndList verifies creation and both tree shapes of the owner list.
*/
func TestHTTP_CreateAndList(t *testing.T) {
	api := newAPIFixture()

	status, body := api.do(t, http.MethodPost, base, "owner-token", `{"topic_id":2,"name":"Travel","is_public":true}`)
	require.Equal(t, http.StatusCreated, status)

	var travel category.Category
	require.NoError(t, json.Unmarshal(body.Data, &travel))
	assert.Equal(t, 1, travel.Depth)
	assert.Equal(t, 1, travel.Order)
	assert.Equal(t, "Travel", travel.TopicName)

	status, _ = api.do(t, http.MethodPost, base, "owner-token",
		`{"parent_id":"`+travel.ID+`","topic_id":2,"name":"Japan","is_public":false}`)
	require.Equal(t, http.StatusCreated, status)

	status, body = api.do(t, http.MethodGet, base, "owner-token", "")
	require.Equal(t, http.StatusOK, status)

	var forest []*category.Node
	require.NoError(t, json.Unmarshal(body.Data, &forest))
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Japan", forest[0].Children[0].Name)

	status, body = api.do(t, http.MethodGet, base+"?flat=true", "owner-token", "")
	require.Equal(t, http.StatusOK, status)

	var flat []category.FlatNode
	require.NoError(t, json.Unmarshal(body.Data, &flat))
	require.Len(t, flat, 2)
	assert.Equal(t, 2, flat[1].Depth)
}

/*
TestHTTP_OwnerGate verifies that owner routes reject anonymous and non-owner callers
while the public tree stays open.
*/
func TestHTTP_OwnerGate(t *testing.T) {
	api := newAPIFixture()
	api.create(t, blog, nil, "Travel", true)
	api.create(t, blog, nil, "Drafts", false)

	status, body := api.do(t, http.MethodGet, base, "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body.Code)

	status, body = api.do(t, http.MethodPost, base, "guest-token", `{"topic_id":1,"name":"Mine","is_public":true}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)

	status, _ = api.do(t, http.MethodGet, base, "forged-token", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = api.do(t, http.MethodGet, base+"/public", "", "")
	require.Equal(t, http.StatusOK, status)

	var forest []*category.Node
	require.NoError(t, json.Unmarshal(body.Data, &forest))
	require.Len(t, forest, 1)
	assert.Equal(t, "Travel", forest[0].Name)
}

/*
TestHTTP_DomainErrors verifies that rule violations map to their codes and statuses.
*/
func TestHTTP_DomainErrors(t *testing.T) {
	api := newAPIFixture()
	travel := api.create(t, blog, nil, "Travel", false)
	food := api.create(t, blog, nil, "Food", true)
	japan := api.create(t, blog, food, "Japan", true)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"private_parent", http.MethodPost, base,
			`{"parent_id":"` + travel.ID + `","topic_id":1,"name":"Leak","is_public":true}`,
			http.StatusBadRequest, "PRIVATE_PARENT_PUBLIC_CHILD"},
		{"unknown_topic", http.MethodPost, base,
			`{"topic_id":77,"name":"Nowhere","is_public":true}`,
			http.StatusNotFound, "TOPIC_NOT_FOUND"},
		{"unknown_parent", http.MethodPost, base,
			`{"parent_id":"not-a-category","topic_id":1,"name":"Orphan","is_public":false}`,
			http.StatusNotFound, "PARENT_CATEGORY_NOT_FOUND"},
		{"missing_visibility", http.MethodPost, base,
			`{"topic_id":1,"name":"Travel"}`,
			http.StatusBadRequest, "VALIDATION_ERROR"},
		{"malformed_json", http.MethodPost, base,
			`{"topic_id":`,
			http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown_field", http.MethodPost, base,
			`{"topic_id":1,"name":"Travel","is_public":true,"depth":1}`,
			http.StatusBadRequest, "VALIDATION_ERROR"},
		{"swap_depth_mismatch", http.MethodPut, base + "/order",
			`{"category_id_1":"` + japan.ID + `","category_id_2":"` + travel.ID + `"}`,
			http.StatusBadRequest, "ORDER_SWAP_DEPTH_MISMATCH"},
		{"visibility_unknown_category", http.MethodPost, base + "/missing/public",
			`{"is_public":false}`,
			http.StatusNotFound, "CATEGORY_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := api.do(t, tt.method, tt.path, "owner-token", tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

/*
TestHTTP_VisibilityAndOrder verifies the two mutation endpoints end to end.
*/
func TestHTTP_VisibilityAndOrder(t *testing.T) {
	api := newAPIFixture()
	travel := api.create(t, blog, nil, "Travel", true)
	food := api.create(t, blog, nil, "Food", true)
	japan := api.create(t, blog, travel, "Japan", true)

	status, body := api.do(t, http.MethodPost, base+"/"+travel.ID+"/public", "owner-token", `{"is_public":false}`)
	require.Equal(t, http.StatusOK, status)

	var result category.VisibilityResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, []string{travel.ID, japan.ID}, result.AffectedIDs)
	assert.False(t, api.repo.visibility(blog)[japan.ID])

	status, _ = api.do(t, http.MethodPut, base+"/order", "owner-token",
		`{"category_id_1":"`+travel.ID+`","category_id_2":"`+food.ID+`"}`)
	require.Equal(t, http.StatusOK, status)

	storedFood, err := api.repo.FindByID(context.Background(), food.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, storedFood.Order)
}

/*
TestHTTP_CrossBlogCategory verifies that a category of another blog cannot be changed
through this blog's routes.
*/
func TestHTTP_CrossBlogCategory(t *testing.T) {
	api := newAPIFixture()
	elsewhere := api.create(t, "other-blog", nil, "Elsewhere", true)

	status, body := api.do(t, http.MethodPost, base+"/"+elsewhere.ID+"/public", "owner-token", `{"is_public":false}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CATEGORY_NOT_OWNED_BY_BLOG", body.Code)
	assert.True(t, api.repo.visibility("other-blog")[elsewhere.ID])
}
