// pkg/crud/store.go

// Package crud implements a generic client-side state manager over one
// REST resource endpoint of the back-office API. A Store keeps the last
// loaded collection, a loading flag, and the most recent error message,
// mirroring what an admin screen needs to render a resource list.
//
// The endpoint contract is the API's own: list responses wrap the
// collection in a single named field ({"categories": [...]}), writes
// return the changed record or a message, and every failure body is
// {"error": "..."}. Writes never patch local state; they trigger a full
// reload so the client always converges on what the server holds.
package crud

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
)

// ErrUnknown is the fallback message recorded when a response cannot be
// read or parsed at all.
const ErrUnknown = "An unknown error occurred"

// Store manages the client-side state of one resource collection.
type Store[T any] struct {
	client        *Client
	path          string
	collectionKey string

	// optional per-record routes for APIs that address records by path
	// instead of id-in-body / id-in-query
	updatePath func(id string) string
	removePath func(id string) string

	mu      sync.RWMutex
	records []T
	loaded  bool
	loading bool
	errMsg  string
}

type StoreOption[T any] func(*Store[T])

// WithCollectionKey declares the field holding the collection in list
// responses. Without it the store falls back to the first array-valued
// field in document order.
func WithCollectionKey[T any](key string) StoreOption[T] {
	return func(s *Store[T]) {
		s.collectionKey = key
	}
}

// WithItemRoutes redirects update and remove calls to per-record paths.
func WithItemRoutes[T any](update, remove func(id string) string) StoreOption[T] {
	return func(s *Store[T]) {
		s.updatePath = update
		s.removePath = remove
	}
}

// NewStore builds a store over the collection endpoint at path, e.g.
// "v1/admin/categories".
func NewStore[T any](client *Client, path string, opts ...StoreOption[T]) *Store[T] {
	s := &Store[T]{
		client: client,
		path:   path,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Records returns the last successfully loaded collection.
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Loaded reports whether at least one reload has succeeded.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Loading reports whether a reload is in flight.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the message recorded by the last failed operation, or ""
// after a success.
func (s *Store[T]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Reload fetches the collection and replaces local state on success. On
// failure the previous records are kept and only the error message
// changes. Concurrent reloads are not sequenced; whichever response is
// applied last wins.
func (s *Store[T]) Reload(ctx context.Context) {
	s.begin(true)

	resp, err := s.client.do(ctx, http.MethodGet, s.path, nil)
	if err != nil {
		s.fail(ErrUnknown, true)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.fail(ErrUnknown, true)
		return
	}

	if resp.StatusCode >= 400 {
		s.fail(errorMessage(body), true)
		return
	}

	records, err := s.extractCollection(body)
	if err != nil {
		s.fail(ErrUnknown, true)
		return
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.loading = false
	s.mu.Unlock()
}

// Create posts a new record and reloads on success.
func (s *Store[T]) Create(ctx context.Context, payload interface{}) bool {
	s.begin(false)

	if !s.write(ctx, http.MethodPost, s.path, payload) {
		return false
	}

	s.Reload(ctx)
	return true
}

// Update sends a partial update for the record with the given id and
// reloads on success.
func (s *Store[T]) Update(ctx context.Context, id string, partial map[string]interface{}) bool {
	s.begin(false)

	var path string
	var body interface{}
	if s.updatePath != nil {
		path = s.updatePath(id)
		body = partial
	} else {
		path = s.path
		merged := make(map[string]interface{}, len(partial)+1)
		for k, v := range partial {
			merged[k] = v
		}
		merged["id"] = id
		body = merged
	}

	if !s.write(ctx, http.MethodPut, path, body) {
		return false
	}

	s.Reload(ctx)
	return true
}

// Remove deletes the record with the given id and reloads on success.
func (s *Store[T]) Remove(ctx context.Context, id string) bool {
	s.begin(false)

	path := s.path + "?id=" + id
	if s.removePath != nil {
		path = s.removePath(id)
	}

	if !s.write(ctx, http.MethodDelete, path, nil) {
		return false
	}

	s.Reload(ctx)
	return true
}

func (s *Store[T]) write(ctx context.Context, method, path string, body interface{}) bool {
	resp, err := s.client.do(ctx, method, path, body)
	if err != nil {
		s.fail(ErrUnknown, false)
		return false
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		s.fail(ErrUnknown, false)
		return false
	}

	if resp.StatusCode >= 400 {
		s.fail(errorMessage(respBody), false)
		return false
	}

	return true
}

// begin clears the error from any previous operation. Reloads also flip
// the loading flag.
func (s *Store[T]) begin(loading bool) {
	s.mu.Lock()
	s.errMsg = ""
	if loading {
		s.loading = true
	}
	s.mu.Unlock()
}

func (s *Store[T]) fail(msg string, loading bool) {
	s.mu.Lock()
	s.errMsg = msg
	if loading {
		s.loading = false
	}
	s.mu.Unlock()
}

func (s *Store[T]) extractCollection(body []byte) ([]T, error) {
	raw, err := collectionField(body, s.collectionKey)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// collectionField pulls the collection out of a wrapped list response.
// With a declared key the named field is used; otherwise the first
// array-valued field in document order is taken.
func collectionField(body []byte, key string) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, &json.UnmarshalTypeError{Value: "non-object response"}
	}

	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := nameTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		if key != "" {
			if name == key {
				return raw, nil
			}
			continue
		}

		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
			return raw, nil
		}
	}

	return nil, io.ErrUnexpectedEOF
}

// errorMessage reads the {"error": ...} failure envelope, falling back
// to the generic message for anything unparseable.
func errorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
		return ErrUnknown
	}
	return envelope.Error
}
