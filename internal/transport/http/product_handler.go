package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/marketline-service/internal/app/market/contracts"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/get_product"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/list_products"
	"github.com/light-bringer/marketline-service/internal/app/market/queries/list_seller_products"
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/change_status"
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/create_product"
	"github.com/light-bringer/marketline-service/internal/app/market/usecases/update_product"
)

// ProductHandler exposes the product lifecycle and read-model queries
// over JSON HTTP.
type ProductHandler struct {
	createProduct *create_product.Interactor
	updateProduct *update_product.Interactor
	changeStatus  *change_status.Interactor

	getProduct         *get_product.Query
	listProducts       *list_products.Query
	listSellerProducts *list_seller_products.Query
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	changeStatus *change_status.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	listSellerProducts *list_seller_products.Query,
) *ProductHandler {
	return &ProductHandler{
		createProduct:      createProduct,
		updateProduct:      updateProduct,
		changeStatus:       changeStatus,
		getProduct:         getProduct,
		listProducts:       listProducts,
		listSellerProducts: listSellerProducts,
	}
}

// Register mounts the product routes on the mux.
func (h *ProductHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/products", h.handleCreate)
	mux.HandleFunc("GET /api/v1/products", h.handleList)
	mux.HandleFunc("GET /api/v1/products/{id}", h.handleGet)
	mux.HandleFunc("PATCH /api/v1/products/{id}", h.handleUpdate)
	mux.HandleFunc("POST /api/v1/products/{id}/status", h.handleChangeStatus)
	mux.HandleFunc("GET /api/v1/sellers/{id}/products", h.handleListBySeller)
}

type createProductRequest struct {
	SellerID      string   `json:"seller_id"`
	CategoryID    string   `json:"category_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PriceCents    int64    `json:"price_cents"`
	AttachmentIDs []string `json:"attachment_ids"`
}

type createProductResponse struct {
	ProductID string `json:"product_id"`
}

func (h *ProductHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := h.createProduct.Execute(r.Context(), &create_product.Request{
		SellerID:      req.SellerID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createProductResponse{ProductID: productID})
}

type updateProductRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	CategoryID    *string   `json:"category_id"`
	PriceCents    *int64    `json:"price_cents"`
	AttachmentIDs *[]string `json:"attachment_ids"`
}

func (h *ProductHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.updateProduct.Execute(r.Context(), &update_product.Request{
		ProductID:     r.PathValue("id"),
		Title:         req.Title,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		PriceCents:    req.PriceCents,
		AttachmentIDs: req.AttachmentIDs,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

func (h *ProductHandler) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.changeStatus.Execute(r.Context(), &change_status.Request{
		ProductID: r.PathValue("id"),
		Status:    req.Status,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	details, err := h.getProduct.Execute(r.Context(), &get_product.Request{
		ProductID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(details))
}

type listProductsResponse struct {
	Products []productResponse `json:"products"`
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	pageSize := 0
	if raw := params.Get("page_size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			pageSize = parsed
		}
	}

	details, err := h.listProducts.Execute(r.Context(), &list_products.Request{
		CategoryID: params.Get("category_id"),
		Status:     params.Get("status"),
		PageSize:   pageSize,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(details))
}

func (h *ProductHandler) handleListBySeller(w http.ResponseWriter, r *http.Request) {
	details, err := h.listSellerProducts.Execute(r.Context(), &list_seller_products.Request{
		SellerID: r.PathValue("id"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(details))
}

// Response shapes. The assembled read-models are mapped field by field
// so the wire format stays stable if the contracts change.

type attachmentResponse struct {
	AttachmentID string `json:"attachment_id"`
	URL          string `json:"url"`
}

type sellerProfileResponse struct {
	SellerID string              `json:"seller_id"`
	Name     string              `json:"name"`
	Phone    string              `json:"phone"`
	Email    string              `json:"email"`
	Avatar   *attachmentResponse `json:"avatar,omitempty"`
}

type categoryResponse struct {
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
}

type productResponse struct {
	ProductID   string                `json:"product_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	PriceCents  int64                 `json:"price_cents"`
	Status      string                `json:"status"`
	Owner       sellerProfileResponse `json:"owner"`
	Category    categoryResponse      `json:"category"`
	Attachments []attachmentResponse  `json:"attachments"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	SoldAt      *time.Time            `json:"sold_at,omitempty"`
}

func toProductResponse(details *contracts.ProductDetails) productResponse {
	attachments := make([]attachmentResponse, 0, len(details.Attachments))
	for _, a := range details.Attachments {
		attachments = append(attachments, attachmentResponse{
			AttachmentID: a.AttachmentID,
			URL:          a.URL,
		})
	}

	owner := sellerProfileResponse{
		SellerID: details.Owner.SellerID,
		Name:     details.Owner.Name,
		Phone:    details.Owner.Phone,
		Email:    details.Owner.Email,
	}
	if details.Owner.Avatar != nil {
		owner.Avatar = &attachmentResponse{
			AttachmentID: details.Owner.Avatar.AttachmentID,
			URL:          details.Owner.Avatar.URL,
		}
	}

	return productResponse{
		ProductID:   details.ProductID,
		Title:       details.Title,
		Description: details.Description,
		PriceCents:  details.PriceCents,
		Status:      details.Status,
		Owner:       owner,
		Category: categoryResponse{
			CategoryID: details.Category.CategoryID,
			Title:      details.Category.Title,
			Slug:       details.Category.Slug,
		},
		Attachments: attachments,
		CreatedAt:   details.CreatedAt,
		UpdatedAt:   details.UpdatedAt,
		SoldAt:      details.SoldAt,
	}
}

func toListResponse(details []*contracts.ProductDetails) listProductsResponse {
	products := make([]productResponse, 0, len(details))
	for _, d := range details {
		products = append(products, toProductResponse(d))
	}
	return listProductsResponse{Products: products}
}
