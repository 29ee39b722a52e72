package handlers

import (
	"log"
	"net/http"

	"github.com/hstore/hstore-api/app/repositories"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
	baseURL      string
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryImpl, rnd *render.Render, baseURL string) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		render:       rnd,
		baseURL:      baseURL,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.List: %v", err)
		renderInternal(h.render, w)
		return
	}

	views := make([]CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, NewCategoryView(h.baseURL, &categories[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, views)
}
