// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caboomlog/backend/internal/platform/middleware"
	requestutil "github.com/caboomlog/backend/internal/platform/request"
	"github.com/caboomlog/backend/internal/platform/respond"
	"github.com/caboomlog/backend/internal/platform/validate"
	"github.com/caboomlog/backend/pkg/slice"
)

// BlogParam is the URL parameter holding the blog fid.
const BlogParam = "blogID"

// # Handler Implementation

// Handler implements the HTTP layer for category operations.
type Handler struct {
	service    *Service
	authorizer middleware.OwnerAuthorizer
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service, authorizer middleware.OwnerAuthorizer) *Handler {
	return &Handler{service: service, authorizer: authorizer}
}

// Routes returns the category endpoints. Mount it under /blogs/{blogID}/categories
// behind [middleware.Authenticate].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public
	router.Get("/public", handler.listPublicTree)

	// ## Blog owner only
	router.Group(func(owner chi.Router) {
		owner.Use(middleware.RequireBlogOwner(handler.authorizer, BlogParam))

		owner.Post("/", handler.createCategory)
		owner.Get("/", handler.listTree)
		owner.Put("/order", handler.switchOrder)
		owner.Post("/{categoryID}/public", handler.changeVisibility)
	})

	return router
}

// # Request Bodies

type createRequest struct {
	ParentID *string `json:"parent_id"`
	TopicID  int     `json:"topic_id"`
	Name     string  `json:"name"`
	IsPublic *bool   `json:"is_public"`
}

type visibilityRequest struct {
	IsPublic *bool `json:"is_public"`
}

type switchOrderRequest struct {
	CategoryID1 string `json:"category_id_1"`
	CategoryID2 string `json:"category_id_2"`
}

// # Category Endpoints

/*
POST /api/v1/blogs/{blogID}/categories.

Description: Creates a category, as a root or under parent_id.

Request (Body):
  - parent_id: string (optional)
  - topic_id: int
  - name: string (1..50 characters)
  - is_public: bool

Response:
  - 201: Category: Created category with depth and order
  - 400: VALIDATION_ERROR, MAX_DEPTH_EXCEEDED, PRIVATE_PARENT_PUBLIC_CHILD, CATEGORY_LIMIT_EXCEEDED
  - 404: TOPIC_NOT_FOUND, PARENT_CATEGORY_NOT_FOUND
*/
func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var body createRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if body.IsPublic == nil {
		respond.Error(writer, request, requiredField(FieldIsPublic))
		return
	}

	category, err := handler.service.CreateCategory(request.Context(), CreateInput{
		BlogID:   requestutil.Param(request, BlogParam),
		ParentID: body.ParentID,
		TopicID:  body.TopicID,
		Name:     body.Name,
		IsPublic: *body.IsPublic,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, category)
}

/*
GET /api/v1/blogs/{blogID}/categories.

Description: Returns every category of the blog as a forest.

Request:
  - flat: bool (Pre-order list without nesting)

Response:
  - 200: []Node or []FlatNode
*/
func (handler *Handler) listTree(writer http.ResponseWriter, request *http.Request) {
	forest, err := handler.service.ListTree(request.Context(), requestutil.Param(request, BlogParam))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if requestutil.BoolQuery(request, "flat") {
		respond.OK(writer, slice.Map(Flatten(forest), ToFlat))
		return
	}

	respond.OK(writer, forest)
}

/*
GET /api/v1/blogs/{blogID}/categories/public.

Description: Returns the public categories of the blog as a forest. No authentication.

Response:
  - 200: []Node
*/
func (handler *Handler) listPublicTree(writer http.ResponseWriter, request *http.Request) {
	forest, err := handler.service.ListPublicTree(request.Context(), requestutil.Param(request, BlogParam))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, forest)
}

/*
POST /api/v1/blogs/{blogID}/categories/{categoryID}/public.

Description: Publishes a single category, or hides it together with its subtree.

Request (Body):
  - is_public: bool

Response:
  - 200: VisibilityResult
  - 400: CATEGORY_NOT_OWNED_BY_BLOG
  - 404: CATEGORY_NOT_FOUND
*/
func (handler *Handler) changeVisibility(writer http.ResponseWriter, request *http.Request) {
	var body visibilityRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if body.IsPublic == nil {
		respond.Error(writer, request, requiredField(FieldIsPublic))
		return
	}

	result, err := handler.service.ChangeVisibility(request.Context(),
		requestutil.Param(request, BlogParam),
		requestutil.Param(request, "categoryID"),
		*body.IsPublic,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
PUT /api/v1/blogs/{blogID}/categories/order.

Description: Swaps the sibling order of two categories at the same depth.

Request (Body):
  - category_id_1: string
  - category_id_2: string

Response:
  - 200: The two swapped IDs
  - 400: ORDER_SWAP_DEPTH_MISMATCH, CATEGORY_NOT_OWNED_BY_BLOG
  - 404: CATEGORY_NOT_FOUND
*/
func (handler *Handler) switchOrder(writer http.ResponseWriter, request *http.Request) {
	var body switchOrderRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.service.SwitchOrder(request.Context(),
		requestutil.Param(request, BlogParam),
		body.CategoryID1,
		body.CategoryID2,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, body)
}

func requiredField(field string) error {
	return (&validate.Validator{}).Required(field, "").Err()
}
