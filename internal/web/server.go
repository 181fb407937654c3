// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the interactive hub browser: a search form, the
// rendered result list with aggregate statistics, and a per-item
// metadata pane. Every request recomputes its records and report from
// its own parameters; the server carries no session state.
// See docs/ARCHITECTURE.md § Web UI.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/awacke1/hub-scout/internal/catalog"
	"github.com/awacke1/hub-scout/internal/normalize"
	"github.com/awacke1/hub-scout/internal/report"
	"github.com/awacke1/hub-scout/pkg/types"
)

// Server wires the catalog client to the browser pages.
type Server struct {
	catalog *catalog.Client
	cfg     types.ServerConfig
	page    *template.Template
}

// New builds a Server. Zero-valued config fields fall back to the
// defaults the original UI shipped with.
func New(client *catalog.Client, cfg types.ServerConfig) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DefaultQuery == "" {
		cfg.DefaultQuery = "awacke1"
	}
	if !cfg.DefaultKind.Valid() {
		cfg.DefaultKind = types.KindModels
	}
	return &Server{
		catalog: client,
		cfg:     cfg,
		page:    template.Must(template.New("page").Parse(pageTmpl)),
	}
}

// Handler returns the HTTP handler for the browser routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /metadata", s.handleMetadata)
	return mux
}

// ListenAndServe runs the browser until the process exits.
func (s *Server) ListenAndServe() error {
	fmt.Fprintf(os.Stderr, "hub-scout browser listening on %s\n", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// pageData is the view model for every page render. Each render is
// built from scratch from the request's own parameters.
type pageData struct {
	Query string
	Kind  types.Kind
	Kinds []types.Kind

	// Search results, present after a search.
	Results  template.HTML
	Report   *types.AggregateReport
	Searched bool

	// Metadata pane, present after a lookup.
	Card     *types.MetadataCard
	CardText string
	NotFound string

	// Error is shown as a banner in place of results.
	Error string
}

func (s *Server) newPageData(query string, kind types.Kind) pageData {
	return pageData{
		Query: query,
		Kind:  kind,
		Kinds: types.Kinds,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, s.newPageData(s.cfg.DefaultQuery, s.cfg.DefaultKind))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	kind, err := types.ParseKind(r.URL.Query().Get("type"))
	if err != nil {
		data := s.newPageData(query, s.cfg.DefaultKind)
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, data)
		return
	}

	data := s.newPageData(query, kind)
	data.Searched = true

	if query == "" {
		data.Error = "enter a search query"
		s.render(w, http.StatusBadRequest, data)
		return
	}

	items, err := s.catalog.Search(r.Context(), catalog.Query{FreeText: query}, kind)
	if err != nil {
		// The interaction loop survives an unavailable catalog; the
		// error takes the place of the result list.
		data.Error = err.Error()
		s.render(w, upstreamStatus(err), data)
		return
	}

	records, err := normalize.Records(items, kind)
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadGateway, data)
		return
	}

	rep, err := report.Aggregate(records)
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusInternalServerError, data)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteHTML(records, &buf); err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusInternalServerError, data)
		return
	}

	data.Results = template.HTML(buf.String())
	data.Report = &rep
	s.render(w, http.StatusOK, data)
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	kind, err := types.ParseKind(r.URL.Query().Get("type"))
	if err != nil {
		data := s.newPageData("", s.cfg.DefaultKind)
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, data)
		return
	}

	data := s.newPageData("", kind)
	if id == "" {
		data.Error = "metadata lookup requires an id"
		s.render(w, http.StatusBadRequest, data)
		return
	}

	card, err := s.catalog.Metadata(r.Context(), id, kind)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		// A missing id is a tagged outcome of its own, not an error
		// banner and never card text.
		data.NotFound = id
		s.render(w, http.StatusNotFound, data)
		return
	case err != nil:
		data.Error = err.Error()
		s.render(w, upstreamStatus(err), data)
		return
	}
	data.Card = card

	// Models additionally show their README card, like the original
	// model-card pane. A repo without a README is fine.
	if kind == types.KindModels {
		if text, err := s.catalog.Card(r.Context(), id, kind); err == nil {
			data.CardText = text
		}
	}

	s.render(w, http.StatusOK, data)
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func upstreamStatus(err error) int {
	if errors.Is(err, catalog.ErrUnavailable) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
