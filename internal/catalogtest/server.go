// Package catalogtest provides an in-process catalog service for tests. It
// serves the table and partition routes from memory and records every call.
package catalogtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/mugiliam/hatchrelclient/pkg/dto"
	"github.com/rs/zerolog/log"
)

// Call is one request received by the server.
type Call struct {
	Method    string
	Path      string
	RawQuery  string
	Body      []byte
	RequestID string
	CallerID  string
}

type tableEntry struct {
	table      dto.TableDTO
	partitions map[string]dto.PartitionDTO
	order      []string
}

type CatalogServer struct {
	Router *chi.Mux

	mu        sync.Mutex
	metalakes map[string]struct{}
	tables    map[string]*tableEntry
	calls     []Call
	failWith  error
	raw       *rawReply
	srv       *httptest.Server
}

type rawReply struct {
	status int
	body   string
}

// NewServer starts a catalog service that is closed when t completes.
func NewServer(t testing.TB) *CatalogServer {
	s := &CatalogServer{
		Router:    chi.NewRouter(),
		metalakes: make(map[string]struct{}),
		tables:    make(map[string]*tableEntry),
	}
	s.MountHandlers()
	s.srv = httptest.NewServer(s.Router)
	t.Cleanup(s.srv.Close)
	return s
}

func (s *CatalogServer) URL() string {
	return s.srv.URL
}

func (s *CatalogServer) MountHandlers() {
	s.Router.Use(s.recordCall)
	s.Router.Route("/api/metalakes/{metalake}/catalogs/{catalog}/schemas/{schema}/tables/{table}", func(r chi.Router) {
		r.Get("/", s.getTable)
		r.Get("/partitions", s.listPartitions)
		r.Post("/partitions", s.addPartitions)
		r.Get("/partitions/{partition}", s.getPartition)
		r.Delete("/partitions/{partition}", s.dropPartition)
	})
}

// AddTable registers a table. Partitions already present on the server for
// the table are discarded.
func (s *CatalogServer) AddTable(metalake, catalog, schema string, t dto.TableDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metalakes[metalake] = struct{}{}
	s.tables[tableKey(metalake, catalog, schema, t.Name)] = &tableEntry{
		table:      t,
		partitions: make(map[string]dto.PartitionDTO),
	}
}

// PartitionNames returns the stored partition names of a table in insertion order.
func (s *CatalogServer) PartitionNames(metalake, catalog, schema, table string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.tables[tableKey(metalake, catalog, schema, table)]
	if !ok {
		return nil
	}
	return append([]string(nil), e.order...)
}

// FailWith makes every following request fail with err until it is called
// with nil. err should be one of the catalogerrors sentinels.
func (s *CatalogServer) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// ReplyRaw makes every following request answer with status and body
// verbatim. A zero status clears it.
func (s *CatalogServer) ReplyRaw(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		s.raw = nil
		return
	}
	s.raw = &rawReply{status: status, body: body}
}

func (s *CatalogServer) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *CatalogServer) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

func (s *CatalogServer) recordCall(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:    r.Method,
			Path:      r.URL.EscapedPath(),
			RawQuery:  r.URL.RawQuery,
			Body:      body,
			RequestID: r.Header.Get("X-Request-ID"),
			CallerID:  r.Header.Get("X-Caller-ID"),
		})
		failWith, raw := s.failWith, s.raw
		s.mu.Unlock()

		if raw != nil {
			w.WriteHeader(raw.status)
			_, _ = w.Write([]byte(raw.body))
			return
		}
		if failWith != nil {
			sendError(w, r, failWith)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *CatalogServer) lookupTable(r *http.Request) (*tableEntry, error) {
	metalake := chi.URLParam(r, "metalake")
	if _, ok := s.metalakes[metalake]; !ok {
		return nil, catalogerrors.ErrNoSuchMetalake.Msg("metalake " + metalake + " does not exist")
	}
	key := tableKey(metalake, chi.URLParam(r, "catalog"), chi.URLParam(r, "schema"), chi.URLParam(r, "table"))
	e, ok := s.tables[key]
	if !ok {
		return nil, catalogerrors.ErrNoSuchTable.Msg("table " + key + " does not exist")
	}
	return e, nil
}

func (s *CatalogServer) getTable(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupTable(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	t := e.table
	sendJSON(w, r, http.StatusOK, &dto.TableResponse{Table: &t})
}

func (s *CatalogServer) listPartitions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupTable(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	if r.URL.Query().Get("details") == "true" {
		parts := make([]dto.PartitionDTO, 0, len(e.order))
		for _, n := range e.order {
			parts = append(parts, e.partitions[n])
		}
		sendJSON(w, r, http.StatusOK, &dto.PartitionListResponse{Partitions: parts})
		return
	}
	sendJSON(w, r, http.StatusOK, &dto.PartitionNameListResponse{Names: append([]string{}, e.order...)})
}

func (s *CatalogServer) addPartitions(w http.ResponseWriter, r *http.Request) {
	req := &dto.AddPartitionsRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		sendError(w, r, catalogerrors.ErrIllegalArgument.MsgErr("malformed request body", err))
		return
	}
	if err := req.Validate(); err != nil {
		sendError(w, r, catalogerrors.ErrIllegalArgument.Err(err))
		return
	}
	if len(req.Partitions) != 1 {
		sendError(w, r, catalogerrors.ErrIllegalArgument.Msg("only one partition can be added per request"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupTable(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	p := req.Partitions[0]
	if _, ok := e.partitions[p.Name]; ok {
		sendError(w, r, catalogerrors.ErrPartitionAlreadyExists.Msg("partition "+p.Name+" already exists"))
		return
	}
	e.partitions[p.Name] = p
	e.order = append(e.order, p.Name)
	sendJSON(w, r, http.StatusOK, &dto.PartitionListResponse{Partitions: []dto.PartitionDTO{p}})
}

func (s *CatalogServer) getPartition(w http.ResponseWriter, r *http.Request) {
	name, err := partitionParam(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupTable(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	p, ok := e.partitions[name]
	if !ok {
		sendError(w, r, catalogerrors.ErrNoSuchPartition.Msg("partition "+name+" does not exist"))
		return
	}
	sendJSON(w, r, http.StatusOK, &dto.PartitionResponse{Partition: &p})
}

func (s *CatalogServer) dropPartition(w http.ResponseWriter, r *http.Request) {
	name, err := partitionParam(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupTable(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	_, ok := e.partitions[name]
	if ok {
		delete(e.partitions, name)
		e.order = remove(e.order, name)
	}
	sendJSON(w, r, http.StatusOK, &dto.DropResponse{Dropped: ok})
}

// partitionParam decodes the trailing partition segment exactly once. chi
// hands back the already decoded Path whenever Go leaves RawPath empty, so
// the segment is read from the escaped path instead.
func partitionParam(r *http.Request) (string, error) {
	ep := r.URL.EscapedPath()
	seg := ep[strings.LastIndex(ep, "/")+1:]
	name, err := url.QueryUnescape(seg)
	if err != nil {
		return "", catalogerrors.ErrIllegalArgument.MsgErr("malformed partition name", err)
	}
	return name, nil
}

func sendJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func tableKey(metalake, catalog, schema, table string) string {
	return metalake + "." + catalog + "." + schema + "." + table
}

func remove(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
