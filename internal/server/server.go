package server

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/sajidZ-904/LDSCO-Task/internal/calculation"
	"github.com/sajidZ-904/LDSCO-Task/internal/domain"
)

// Server exposes the projection engine over HTTP. It holds no per-request
// state; the engine is pure, so one Server handles unlimited concurrent
// requests without locking.
type Server struct {
	engine *calculation.Engine
}

// New creates a Server around the given engine.
func New(engine *calculation.Engine) *Server {
	return &Server{engine: engine}
}

// ErrorResponse is the JSON envelope for all non-200 replies. Errors, when
// present, maps field names to validation messages.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Handler routes incoming requests. Suitable for fasthttp.ListenAndServe.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/v1/projection":
		s.handleProjection(ctx)
	case "/healthz":
		s.handleHealth(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found", nil)
	}
}

// ListenAndServe runs the server on the given address until it fails.
func (s *Server) ListenAndServe(addr string) error {
	return fasthttp.ListenAndServe(addr, s.Handler)
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var inputs domain.ProjectionInputs
	if err := json.Unmarshal(ctx.PostBody(), &inputs); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	report, err := s.engine.Project(inputs)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			s.writeError(ctx, fasthttp.StatusUnprocessableEntity, "validation failed", verrs)
			return
		}
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error(), nil)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, report)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(fmt.Sprintf(`{"status":500,"message":%q}`, err.Error()))
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string, fields map[string]string) {
	s.writeJSON(ctx, status, ErrorResponse{
		Status:  status,
		Message: message,
		Errors:  fields,
	})
}
