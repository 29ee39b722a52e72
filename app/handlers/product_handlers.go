package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hstore/hstore-api/app/helpers"
	"github.com/hstore/hstore-api/app/repositories"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

const latestProductsLimit = 8

type ProductHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
	baseURL     string
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, rnd *render.Render, baseURL string) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
		render:      rnd,
		baseURL:     baseURL,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := helpers.ParsePagination(r)

	filter := repositories.ProductFilter{
		CategorySlug: r.URL.Query().Get("category"),
		Search:       r.URL.Query().Get("search"),
		Featured:     r.URL.Query().Get("featured") == "true",
		Bestseller:   r.URL.Query().Get("bestseller") == "true",
	}

	products, total, err := h.productRepo.GetPaginated(r.Context(), filter, limit, offset)
	if err != nil {
		log.Printf("ProductHandler.List: %v", err)
		renderInternal(h.render, w)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, PageView{
		Data:       NewProductViews(h.baseURL, products),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: helpers.TotalPages(total, limit),
	})
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetActiveByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderError(h.render, w, http.StatusNotFound, codeNotFound, "product not found")
			return
		}
		log.Printf("ProductHandler.Detail: %v", err)
		renderInternal(h.render, w)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, NewProductView(h.baseURL, product))
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetFeatured(r.Context())
	if err != nil {
		log.Printf("ProductHandler.Featured: %v", err)
		renderInternal(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, NewProductViews(h.baseURL, products))
}

func (h *ProductHandler) Latest(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetLatest(r.Context(), latestProductsLimit)
	if err != nil {
		log.Printf("ProductHandler.Latest: %v", err)
		renderInternal(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, NewProductViews(h.baseURL, products))
}

func (h *ProductHandler) Bestsellers(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetBestsellers(r.Context())
	if err != nil {
		log.Printf("ProductHandler.Bestsellers: %v", err)
		renderInternal(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, NewProductViews(h.baseURL, products))
}
