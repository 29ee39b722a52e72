package handlers

import (
	"log"
	"net/http"

	"github.com/hstore/hstore-api/app/repositories"
	"github.com/hstore/hstore-api/app/services"
	"github.com/unrolled/render"
)

// ContentHandler serves the homepage content: hero slides, partner logos and
// company info.
type ContentHandler struct {
	slideRepo repositories.SlideRepositoryImpl
	logoRepo  repositories.CompanyLogoRepositoryImpl
	infoSvc   *services.CompanyInfoService
	render    *render.Render
	baseURL   string
}

func NewContentHandler(
	slideRepo repositories.SlideRepositoryImpl,
	logoRepo repositories.CompanyLogoRepositoryImpl,
	infoSvc *services.CompanyInfoService,
	rnd *render.Render,
	baseURL string,
) *ContentHandler {
	return &ContentHandler{
		slideRepo: slideRepo,
		logoRepo:  logoRepo,
		infoSvc:   infoSvc,
		render:    rnd,
		baseURL:   baseURL,
	}
}

func (h *ContentHandler) Slides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.slideRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("ContentHandler.Slides: %v", err)
		renderInternal(h.render, w)
		return
	}

	views := make([]SlideView, 0, len(slides))
	for i := range slides {
		views = append(views, NewSlideView(h.baseURL, &slides[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, views)
}

func (h *ContentHandler) CompanyLogos(w http.ResponseWriter, r *http.Request) {
	logos, err := h.logoRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("ContentHandler.CompanyLogos: %v", err)
		renderInternal(h.render, w)
		return
	}

	views := make([]CompanyLogoView, 0, len(logos))
	for i := range logos {
		views = append(views, NewCompanyLogoView(h.baseURL, &logos[i]))
	}
	_ = h.render.JSON(w, http.StatusOK, views)
}

func (h *ContentHandler) CompanyInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.infoSvc.Get(r.Context())
	if err != nil {
		log.Printf("ContentHandler.CompanyInfo: %v", err)
		renderInternal(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, info)
}
