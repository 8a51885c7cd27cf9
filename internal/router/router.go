package router // package router defines how HTTP routes are registered for the service

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/bmi-calculator/internal/handler"    // handlers for the form, API and health check
	"github.com/iliyamo/bmi-calculator/internal/middleware" // rate limiting and response caching
)

// RegisterRoutes registers the health check.  It carries no middleware so
// load balancers are never rate limited.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterWeb registers the HTML form.  GET / renders the empty form and
// POST /calculate evaluates one submission; only the submission is rate
// limited.
func RegisterWeb(e *echo.Echo, h *handler.BMIHandler, limit echo.MiddlewareFunc) {
	e.GET("/", h.Form)
	e.POST("/calculate", h.Calculate, limit)
}

// RegisterAPI registers the JSON endpoints under /v1.  Every route is rate
// limited; the two GET routes depend only on their query and are cached.
// POST /v1/bmi carries a name and is never cached.
func RegisterAPI(e *echo.Echo, h *handler.BMIHandler, limit, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", limit)
	g.POST("/bmi", h.Evaluate)
	g.GET("/bmi", h.Compute, cache)
	g.GET("/categories", h.Categories, cache)
}

// Deps holds everything the route groups need.
type Deps struct {
	Handler   *handler.BMIHandler
	RateLimit echo.MiddlewareFunc
	Cache     echo.MiddlewareFunc
}

// New builds an echo instance with the renderer, request logging and all
// routes.  Nil middlewares are treated as pass-through.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = handler.NewRenderer()
	e.Use(middleware.RequestLogger())

	limit, cache := d.RateLimit, d.Cache
	if limit == nil {
		limit = noop
	}
	if cache == nil {
		cache = noop
	}

	RegisterRoutes(e)
	RegisterWeb(e, d.Handler, limit)
	RegisterAPI(e, d.Handler, limit, cache)
	return e
}

func noop(next echo.HandlerFunc) echo.HandlerFunc { return next }
