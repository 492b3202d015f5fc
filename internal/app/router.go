package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contentflow-backend/internal/auth"
	"github.com/heartmarshall/contentflow-backend/internal/config"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	contentsvc "github.com/heartmarshall/contentflow-backend/internal/service/content"
	"github.com/heartmarshall/contentflow-backend/internal/service/workflow"
	"github.com/heartmarshall/contentflow-backend/internal/transport/dataloader"
	"github.com/heartmarshall/contentflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/contentflow-backend/internal/transport/rest"
)

// SchemaInspector reports the applied and newest migration versions.
type SchemaInspector interface {
	SchemaVersion(ctx context.Context) (current, latest int64, err error)
}

// RouterDeps holds everything the HTTP surface is built from.
type RouterDeps struct {
	Logger   *slog.Logger
	Pool     *pgxpool.Pool
	Schema   SchemaInspector
	Version  string
	Tokens   *auth.JWTManager
	Content  *contentsvc.Service
	Workflow *workflow.Service
	Loaders  *dataloader.Repos
	CORS     config.CORSConfig

	// Limiter throttles write routes at WriteRateLimit requests per
	// caller per minute. A nil limiter or a zero limit disables it.
	Limiter        *middleware.RateLimiter
	WriteRateLimit int
}

// NewRouter builds the HTTP handler: health probes, content routes for every
// content type and the operator queue, behind the shared middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	health := rest.NewHealthHandler(d.Pool, d.Schema, d.Version)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	var limit middleware.Middleware
	if d.Limiter != nil {
		limit = d.Limiter.Limit(d.WriteRateLimit)
	}
	actor := middleware.RequireActor
	operator := middleware.RequirePlatform

	for _, typ := range []domain.ContentType{domain.ContentTypePost, domain.ContentTypeEvent} {
		h := rest.NewContentHandler(d.Content, typ, d.Logger)
		base := collectionPath(typ)

		mux.Handle("POST "+base, middleware.Wrap(http.HandlerFunc(h.Create), actor, limit))
		mux.Handle("GET "+base+"/{id}", middleware.Wrap(http.HandlerFunc(h.Get), actor))
		mux.Handle("PATCH "+base+"/{id}", middleware.Wrap(http.HandlerFunc(h.Update), actor, limit))
		mux.Handle("POST "+base+"/{id}/submit", middleware.Wrap(http.HandlerFunc(h.Submit), actor, limit))
		mux.Handle("POST "+base+"/{id}/retract", middleware.Wrap(http.HandlerFunc(h.Retract), actor, limit))
	}

	processes := rest.NewProcessHandler(d.Workflow, d.Logger)
	mux.Handle("GET /processes", middleware.Wrap(http.HandlerFunc(processes.List), operator, dataloader.Middleware(d.Loaders)))
	mux.Handle("GET /processes/{process_id}", middleware.Wrap(http.HandlerFunc(processes.Get), operator))
	mux.Handle("PATCH /processes/{process_id}/{activity_id}", middleware.Wrap(http.HandlerFunc(processes.Act), operator, limit))

	// Logger runs inside Auth so access lines carry the actor.
	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
	)(mux)
}

func collectionPath(t domain.ContentType) string {
	if t == domain.ContentTypeEvent {
		return "/events"
	}
	return "/posts"
}
