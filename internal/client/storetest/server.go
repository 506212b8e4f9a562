// Package storetest runs an in-memory stand-in for the REST mock store in
// tests. It serves the users and tasks collections with the same surface the
// real store exposes: equality filters on list, POST with generated ids,
// PATCH merge and DELETE.
//
// Failures can be injected per method and collection, and every request is
// counted, so tests can assert that a validation error made no network call.
package storetest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type record = map[string]any

type failure struct {
	status int
	body   string
}

// Server is a fake store. Create it with New; it shuts down with the test.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	data       map[string][]record
	nextID     map[string]int
	failures   map[string]failure
	calls      map[string]int
	requestIDs []string
}

var collections = []string{"users", "tasks"}

// New starts a fake store and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		data:     make(map[string][]record),
		nextID:   make(map[string]int),
		failures: make(map[string]failure),
		calls:    make(map[string]int),
	}
	for _, c := range collections {
		s.data[c] = nil
		s.nextID[c] = 1
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	mux := chi.NewRouter()
	mux.Use(s.countCalls)
	mux.Use(s.injectFailures)

	mux.Get("/{collection}", s.handleList)
	mux.Post("/{collection}", s.handleCreate)
	mux.Get("/{collection}/{id}", s.handleGet)
	mux.Patch("/{collection}/{id}", s.handlePatch)
	mux.Delete("/{collection}/{id}", s.handleDelete)

	return mux
}

func key(method, collection string) string {
	return method + " " + collection
}

func collectionOf(r *http.Request) string {
	path := strings.TrimPrefix(r.URL.Path, "/")
	c, _, _ := strings.Cut(path, "/")
	return c
}

func (s *Server) countCalls(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[key(r.Method, collectionOf(r))]++
		s.requestIDs = append(s.requestIDs, r.Header.Get(common.RequestIDHeaderName))
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[key(r.Method, collectionOf(r))]
		s.mu.Unlock()
		if ok {
			w.WriteHeader(f.status)
			_, _ = io.WriteString(w, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Fail makes every request with method on collection answer with status
// until Recover is called.
func (s *Server) Fail(method, collection string, status int) {
	s.FailWithBody(method, collection, status, `{"error":"injected failure"}`)
}

// FailWithBody is Fail with a custom response body, e.g. malformed JSON.
func (s *Server) FailWithBody(method, collection string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[key(method, collection)] = failure{status: status, body: body}
}

// Recover removes every injected failure.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
}

// Calls returns the total number of requests served.
func (s *Server) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// CallsTo returns the number of requests with method on collection.
func (s *Server) CallsTo(method, collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key(method, collection)]
}

// RequestIDs returns the request-id header of every request in order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// SeedUsers stores users as given, keeping their ids.
func (s *Server) SeedUsers(t testing.TB, users ...models.User) {
	t.Helper()
	for _, u := range users {
		s.seed(t, "users", u)
	}
}

// SeedTasks stores tasks as given, keeping their ids.
func (s *Server) SeedTasks(t testing.TB, tasks ...models.Task) {
	t.Helper()
	for _, task := range tasks {
		s.seed(t, "tasks", task)
	}
}

// SeedRaw stores a raw JSON object, for records whose shape the models
// would normalise away.
func (s *Server) SeedRaw(t testing.TB, collection, raw string) {
	t.Helper()
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("seed %s: %v", collection, err)
	}
	s.insert(collection, rec)
}

func (s *Server) seed(t testing.TB, collection string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("seed %s: %v", collection, err)
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		t.Fatalf("seed %s: %v", collection, err)
	}
	s.insert(collection, rec)
}

func (s *Server) insert(collection string, rec record) record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idString(rec["id"]) == "" {
		rec["id"] = s.nextID[collection]
	}
	if n := idNumber(rec["id"]); n >= s.nextID[collection] {
		s.nextID[collection] = n + 1
	}
	s.data[collection] = append(s.data[collection], rec)
	return rec
}

// Users decodes the current users collection.
func (s *Server) Users(t testing.TB) []models.User {
	t.Helper()
	var out []models.User
	s.decodeAll(t, "users", &out)
	return out
}

// Tasks decodes the current tasks collection.
func (s *Server) Tasks(t testing.TB) []models.Task {
	t.Helper()
	var out []models.Task
	s.decodeAll(t, "tasks", &out)
	return out
}

func (s *Server) decodeAll(t testing.TB, collection string, out any) {
	t.Helper()
	s.mu.Lock()
	b, err := json.Marshal(s.data[collection])
	s.mu.Unlock()
	if err != nil {
		t.Fatalf("encode %s: %v", collection, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("decode %s: %v", collection, err)
	}
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}

func idNumber(v any) int {
	var n int
	if _, err := fmt.Sscanf(idString(v), "%d", &n); err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) knownCollection(w http.ResponseWriter, r *http.Request) (string, bool) {
	c := chi.URLParam(r, "collection")
	if _, ok := s.data[c]; !ok {
		writeJSON(w, http.StatusNotFound, record{})
		return "", false
	}
	return c, true
}

func (s *Server) indexOf(collection, id string) int {
	for i, rec := range s.data[collection] {
		if idString(rec["id"]) == id {
			return i
		}
	}
	return -1
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.knownCollection(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	out := make([]record, 0, len(s.data[c]))
	for _, rec := range s.data[c] {
		match := true
		for field := range query {
			if idString(rec[field]) != query.Get(field) {
				match = false
				break
			}
		}
		if match {
			out = append(out, rec)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.knownCollection(w, r)
	if !ok {
		return
	}
	i := s.indexOf(c, chi.URLParam(r, "id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, record{})
		return
	}
	writeJSON(w, http.StatusOK, s.data[c][i])
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	c := chi.URLParam(r, "collection")
	s.mu.Lock()
	_, ok := s.data[c]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, record{})
		return
	}

	var rec record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, record{"error": err.Error()})
		return
	}
	delete(rec, "id")

	writeJSON(w, http.StatusCreated, s.insert(c, rec))
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	var patch record
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, record{"error": err.Error()})
		return
	}
	delete(patch, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.knownCollection(w, r)
	if !ok {
		return
	}
	i := s.indexOf(c, chi.URLParam(r, "id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, record{})
		return
	}
	for k, v := range patch {
		s.data[c][i][k] = v
	}
	writeJSON(w, http.StatusOK, s.data[c][i])
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.knownCollection(w, r)
	if !ok {
		return
	}
	i := s.indexOf(c, chi.URLParam(r, "id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, record{})
		return
	}
	s.data[c] = append(s.data[c][:i], s.data[c][i+1:]...)
	writeJSON(w, http.StatusOK, record{})
}
