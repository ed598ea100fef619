package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-intelligence-api/pkg/apiErrors"
)

// Middleware envolve um handler; as rotas aplicam os seus na ordem da lista
type Middleware = func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware
}

// Protect antepõe middlewares a um grupo de rotas, mantendo os específicos de cada rota
func Protect(routes []Route, middlewares ...Middleware) []Route {
	protected := make([]Route, len(routes))
	for i, route := range routes {
		route.Middlewares = append(append([]Middleware{}, middlewares...), route.Middlewares...)
		protected[i] = route
	}
	return protected
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// New cria o router com respostas JSON padronizadas para 404 e 405
func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", nil)
	})
	// OPTIONS é respondido pelo middleware de CORS
	rt.HandleOPTIONS = false

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
