package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/geometry"
	mio "github.com/matzehuels/mandala/pkg/io"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:     "image/svg+xml",
	pipeline.FormatPNG:     "image/png",
	pipeline.FormatPDF:     "application/pdf",
	pipeline.FormatJSON:    "application/json",
	pipeline.FormatDOT:     "text/vnd.graphviz",
	pipeline.FormatOutline: "image/svg+xml",
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := mio.WriteJSON(m, w); err != nil {
		s.logger.Error("write document", "error", err)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts, err := exportOptions(r, format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts.ID = chi.URLParam(r, "id")
	opts.Logger = s.logger.With("request_id", middleware.GetReqID(r.Context()))

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cache := "miss"
	if res.RenderHit() {
		cache = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cache)
	w.Header().Set("ETag", strconv.Quote(res.DocHash[:16]))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func exportOptions(r *http.Request, format string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats:  []string{format},
		Filter:   mandala.Filter{},
		Collapse: flag(q.Get("collapse")),
		Refresh:  flag(q.Get("refresh")),
		Detailed: flag(q.Get("detailed")),
		NoFont:   flag(q.Get("nofont")),
		Expanded: list(q.Get("expand")),
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, err
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidSize, err, "invalid size %q", v)
		}
		opts.Size = size
	}
	if dims := list(q.Get("dimension")); len(dims) > 0 {
		opts.Filter["dimension"] = dims
	}
	if tags := list(q.Get("tag")); len(tags) > 0 {
		opts.Filter["tags"] = tags
	}
	return opts, nil
}

type placementResponse struct {
	Dimension      string         `json:"dimension"`
	Scale          string         `json:"scale"`
	DimensionIndex int            `json:"dimension_index"`
	ScaleIndex     int            `json:"scale_index"`
	Position       geometry.Point `json:"position"`
}

func (s *Server) handlePlacement(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	p, err := queryPoint(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	pl := m.Placement(p)
	writeJSON(w, http.StatusOK, placementResponse{
		Dimension:      pl.Dimension,
		Scale:          pl.Scale,
		DimensionIndex: pl.DimensionIndex,
		ScaleIndex:     pl.ScaleIndex,
		Position:       p,
	})
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind := mandala.Kind(chi.URLParam(r, "kind"))
	switch kind {
	case mandala.KindNote, mandala.KindCharacter, mandala.KindImage:
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown item kind %q", kind))
		return
	}

	var p geometry.Point
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode position"))
		return
	}

	m, err := s.store.Load(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	upd, ok := m.Move(kind, chi.URLParam(r, "item"), p)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeItemNotFound, "%s %s not found", kind, upd.ItemID))
		return
	}
	if err := s.store.WritePosition(ctx, upd); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, upd)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode content"))
		return
	}
	upd := mandala.ContentUpdate{
		MandalaID: chi.URLParam(r, "id"),
		ItemID:    chi.URLParam(r, "item"),
		Content:   body.Content,
	}
	if err := s.store.WriteContent(r.Context(), upd); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, upd)
}

func queryPoint(r *http.Request) (geometry.Point, error) {
	q := r.URL.Query()
	x, err := strconv.ParseFloat(q.Get("x"), 64)
	if err != nil {
		return geometry.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid x")
	}
	y, err := strconv.ParseFloat(q.Get("y"), 64)
	if err != nil {
		return geometry.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid y")
	}
	return geometry.Point{X: x, Y: y}, nil
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func flag(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func list(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
