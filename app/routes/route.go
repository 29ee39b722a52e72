package routes

import (
	"log"

	"github.com/gorilla/mux"
	"github.com/hstore/hstore-api/app/configs"
	"github.com/hstore/hstore-api/app/handlers"
	"github.com/hstore/hstore-api/app/middlewares"
	"github.com/hstore/hstore-api/app/repositories"
	"github.com/hstore/hstore-api/app/services"
	"github.com/hstore/hstore-api/app/utils/sessions"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	rnd := render.New()
	baseURL := configs.LoadENV.APP_URL

	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	slideRepo := repositories.NewSlideRepository(db)
	logoRepo := repositories.NewCompanyLogoRepository(db)
	infoRepo := repositories.NewCompanyInfoRepository(db)

	cartSvc := services.NewCartService(cartRepo, cartItemRepo, productRepo)
	infoSvc := services.NewCompanyInfoService(infoRepo)

	resolver := sessions.NewResolver(sessionKeyPairs()...)

	cartHandler := handlers.NewCartHandler(cartSvc, resolver, rnd, baseURL)
	productHandler := handlers.NewProductHandler(productRepo, rnd, baseURL)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, rnd, baseURL)
	contentHandler := handlers.NewContentHandler(slideRepo, logoRepo, infoSvc, rnd, baseURL)

	router := mux.NewRouter()
	router.Use(middlewares.Recovery, middlewares.RequestLogger, middlewares.JSONContentType)

	router.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartHandler.AddItem).Methods("POST")
	router.HandleFunc("/cart", cartHandler.UpdateItem).Methods("PUT")
	router.HandleFunc("/cart", cartHandler.RemoveItem).Methods("DELETE")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/featured", productHandler.Featured).Methods("GET")
	api.HandleFunc("/products/latest", productHandler.Latest).Methods("GET")
	api.HandleFunc("/products/bestsellers", productHandler.Bestsellers).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Detail).Methods("GET")
	api.HandleFunc("/slides", contentHandler.Slides).Methods("GET")
	api.HandleFunc("/company-logos", contentHandler.CompanyLogos).Methods("GET")
	api.HandleFunc("/company-info", contentHandler.CompanyInfo).Methods("GET")

	return router
}

// sessionKeyPairs prefers the signed+encrypted key pair; a bare SESSION_KEY
// works for development setups.
func sessionKeyPairs() [][]byte {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err == nil {
		return [][]byte{keys.AuthKey, keys.EncKey}
	}
	log.Printf("session keys not configured (%v); falling back to SESSION_KEY", err)
	return [][]byte{[]byte(configs.LoadENV.SESSION_KEY)}
}
