package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries the transport-level knobs; the core never sees
// any of these.
type RouterConfig struct {
	AdminUsername  string
	AdminPassword  string
	CORSOrigins    []string
	StaticDir      string
	RequestTimeout time.Duration
}

type Handlers struct {
	Products  *ProductHandler
	Carts     *CartHandler
	Checkout  *CheckoutHandler
	Discounts *DiscountHandler
	Admin     *AdminHandler
}

// NewRouter assembles the full HTTP surface: public storefront routes,
// basic-auth-protected admin routes and optional static file serving
// for product images.
func NewRouter(cfg RouterConfig, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}))
	}
	r.Use(DemoUserMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the E-commerce Assessment API"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/products", h.Products.List)
	r.Get("/products/{product_id}", h.Products.Get)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.Carts.GetCart)
		r.Post("/items", h.Carts.AddItem)
		r.Delete("/items/{product_id}", h.Carts.RemoveItem)
	})

	r.Get("/discount/validate", h.Discounts.Validate)
	r.Post("/checkout", h.Checkout.Checkout)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("admin", map[string]string{
			cfg.AdminUsername: cfg.AdminPassword,
		}))
		r.Post("/generate-discount", h.Admin.GenerateDiscount)
		r.Get("/stats", h.Admin.Stats)
	})

	if cfg.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
