package httpx

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Router wraps gorilla/mux with the middleware chain shared by every service
type Router struct {
	mux     *mux.Router
	logger  *zap.Logger
	metrics *Metrics
}

func NewRouter(serviceName string, logger *zap.Logger) *Router {
	m := mux.NewRouter()
	metrics := NewMetrics(serviceName)
	chain := []mux.MiddlewareFunc{RequestID, Recover(logger), AccessLog(logger), metrics.Middleware}
	m.Use(chain...)
	m.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	// mux skips Use middleware for unmatched requests
	m.NotFoundHandler = wrap(chain, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusNotFound, Fail("route not found"))
	}))
	m.MethodNotAllowedHandler = wrap(chain, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusMethodNotAllowed, Fail("method not allowed"))
	}))
	return &Router{mux: m, logger: logger, metrics: metrics}
}

func wrap(chain []mux.MiddlewareFunc, h http.Handler) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

// Handle registers h for method + path template (e.g. "/api-registros/v1/estados/{id}")
func (r *Router) Handle(method, path string, h http.HandlerFunc) {
	r.mux.HandleFunc(path, h).Methods(method)
}

func (r *Router) Logger() *zap.Logger { return r.logger }

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	CORS(r.mux).ServeHTTP(w, req)
}

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterHealth adds GET /health reporting the database state
func (r *Router) RegisterHealth(db Pinger) {
	r.Handle(http.MethodGet, "/health", func(w http.ResponseWriter, req *http.Request) {
		if db == nil {
			WriteOK(w, map[string]string{"status": "up", "database": "disabled"})
			return
		}
		if err := db.PingContext(req.Context()); err != nil {
			r.logger.Warn("health check failed", zap.Error(err))
			WriteJSON(w, http.StatusServiceUnavailable, Result[map[string]string]{
				Code: ResultError, Type: "error", Message: "database unreachable",
				Result: map[string]string{"status": "down", "database": "down"},
			})
			return
		}
		WriteOK(w, map[string]string{"status": "up", "database": "up"})
	})
}
