package host

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/wcbridge/internal/errors"
)

const tracerName = "wcbridge/host"

const maxBodyBytes = 1 << 20

// Handler returns the HTTP API.
func (h *Host) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(tracing)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	r.Get("/ws/events", h.hub.HandleWebSocket)

	r.Route("/api/elements", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Delete("/", h.handleDelete)
			r.Put("/attributes/{name}", h.handleSetAttribute)
			r.Delete("/attributes/{name}", h.handleRemoveAttribute)
			r.Post("/detach", h.handleDetach)
			r.Post("/attach", h.handleAttach)
			r.Post("/call/{prop}", h.handleCall)
		})
	})
	return r
}

// tracing starts a server span per request, named after the matched route.
func tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
				span.SetAttributes(attribute.String("http.route", pattern))
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}

func (h *Host) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.List())
}

func (h *Host) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.Create(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Host) handleGet(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.Get(chi.URLParam(r, "id")))
}

func (h *Host) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Delete(chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type attributeRequest struct {
	Value string `json:"value"`
}

func (h *Host) handleSetAttribute(w http.ResponseWriter, r *http.Request) {
	var req attributeRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respond(w, r)(h.SetAttribute(chi.URLParam(r, "id"), chi.URLParam(r, "name"), req.Value))
}

func (h *Host) handleRemoveAttribute(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.RemoveAttribute(chi.URLParam(r, "id"), chi.URLParam(r, "name")))
}

func (h *Host) handleDetach(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.Detach(chi.URLParam(r, "id")))
}

func (h *Host) handleAttach(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.Attach(chi.URLParam(r, "id")))
}

type callRequest struct {
	Args []any `json:"args"`
}

func (h *Host) handleCall(w http.ResponseWriter, r *http.Request) {
	var req callRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respond(w, r)(h.Call(chi.URLParam(r, "id"), chi.URLParam(r, "prop"), req.Args))
}

func (h *Host) respond(w http.ResponseWriter, r *http.Request) func(ElementView, error) {
	return func(v ElementView, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// decode reads a JSON body. An empty body leaves dst untouched.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && err != io.EOF {
		return errors.New("E143").Wrap(err)
	}
	return nil
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (h *Host) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := errors.FromError(err, "")
	status := statusFor(e.Code)
	if status >= 500 {
		h.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	trace.SpanFromContext(r.Context()).RecordError(err)

	msg := e.Message
	if e.Code == "" {
		msg = err.Error()
	}
	writeJSON(w, status, errorBody{
		Code:       e.Code,
		Message:    msg,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	})
}

func statusFor(code string) int {
	if code == "E140" {
		return http.StatusNotFound
	}
	if t, ok := errors.Lookup(code); ok && t.Category == errors.CategoryHost {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeJSON encodes v before committing the status, so an unencodable
// value becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "encode response: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
