package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/alanjohnck/porter-proxy/internal/middleware"
	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

// Route is one entry of the gateway route table. UpstreamPath is empty
// for routes served locally.
type Route struct {
	Name           string
	Method         string
	Path           string
	UpstreamMethod string
	UpstreamPath   string
	Handler        http.HandlerFunc
}

// Handlers groups the handlers the route table binds to
type Handlers struct {
	Porter *PorterHandler
	Health *HealthHandler
	IP     *IPHandler
}

// Routes returns the canonical route table
func Routes(h Handlers) []Route {
	orderFlow := Route{
		Name:           "initiate_order_flow",
		Method:         http.MethodPost,
		Path:           "/v1/simulation/initiate_order_flow",
		UpstreamMethod: http.MethodPost,
		UpstreamPath:   "/v1/simulation/initiate_order_flow",
	}
	orderFlow.Handler = h.Porter.forward(orderFlow, decodeOrderFlow, wrapUpstreamError)

	simulate := orderFlow
	simulate.Name = "simulate"
	simulate.Path = "/porter/simulate"
	simulate.Handler = h.Porter.forward(simulate, decodeOrderFlow, wrapUpstreamError)

	createOrder := Route{
		Name:           "create_order",
		Method:         http.MethodPost,
		Path:           "/api/create_order",
		UpstreamMethod: http.MethodPost,
		UpstreamPath:   "/v1/orders/create",
	}
	createOrder.Handler = h.Porter.forward(createOrder, decodeCreateOrder, relayUpstreamError)

	quote := Route{
		Name:           "get_quote",
		Method:         http.MethodGet,
		Path:           "/v1/get_quote",
		UpstreamMethod: http.MethodGet,
		UpstreamPath:   "/v1/get_quote",
	}
	quote.Handler = h.Porter.forward(quote, decodeQuote, wrapUpstreamError)

	return []Route{
		{Name: "root", Method: http.MethodGet, Path: "/", Handler: h.Health.Root},
		{Name: "health", Method: http.MethodGet, Path: "/health", Handler: h.Health.CheckHealth},
		orderFlow,
		simulate,
		createOrder,
		quote,
		{Name: "my_ip", Method: http.MethodGet, Path: "/my-ip", Handler: h.IP.MyIP},
	}
}

// NewRouter mounts the route table behind the shared middleware stack
func NewRouter(h Handlers, corsOrigins []string, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(corsOrigins))

	for _, route := range Routes(h) {
		r.Method(route.Method, route.Path, route.Handler)
	}

	return r
}
