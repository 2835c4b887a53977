package panel

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/carbazaar/admin-gateway/internal/backend"
)

// ErrCanceled reports a delete whose confirmation was declined. It is a
// no-op outcome, not a failure: no backend call was made.
var ErrCanceled = errors.New("delete canceled")

// UpdateVerb selects the HTTP method for partial updates. Most panels PATCH;
// newsletter and testimonials use PUT upstream.
type UpdateVerb int

const (
	UpdateWithPatch UpdateVerb = iota
	UpdateWithPut
)

// Controller mediates one resource panel's interaction with the backend:
// filterable list, create, edit, delete with confirmation, and detail view.
// It owns the panel's list state; concurrent loads are resolved with a
// monotonic request generation so the most recently initiated load wins and
// stale responses are discarded.
type Controller[T any] struct {
	client *backend.Client
	entity string
	path   string
	verb   UpdateVerb

	mu          sync.Mutex
	records     []T
	lastFilters url.Values
	initiated   uint64
	applied     uint64
}

func NewController[T any](client *backend.Client, entity, path string, verb UpdateVerb) *Controller[T] {
	return &Controller[T]{
		client: client,
		entity: entity,
		path:   path,
		verb:   verb,
	}
}

// listEnvelope matches the backend's paginated list shape. Some endpoints
// answer with a bare array instead, so decoding falls back to that.
type listEnvelope[T any] struct {
	Items []T `json:"items"`
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	var envelope listEnvelope[T]
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Items != nil {
		return envelope.Items, nil
	}

	var bare []T
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}

// Load fetches the list with the given filters and applies it to the panel
// state unless a newer load was initiated meanwhile. On failure the prior
// list is left untouched and the error is returned for the handler to surface;
// nothing is retried.
func (c *Controller[T]) Load(ctx context.Context, token string, filters url.Values) ([]T, error) {
	c.mu.Lock()
	c.initiated++
	generation := c.initiated
	c.lastFilters = filters
	c.mu.Unlock()

	var raw json.RawMessage
	if err := c.client.GetJSON(ctx, c.path, token, filters, &raw); err != nil {
		return nil, err
	}

	items, err := decodeList[T](raw)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation < c.applied {
		// A newer load already landed; this result is stale.
		log.Debug().Str("entity", c.entity).Uint64("generation", generation).Msg("discarding stale list response")
		return c.snapshotLocked(), nil
	}
	c.applied = generation
	c.records = items
	return c.snapshotLocked(), nil
}

// Reload re-runs the most recent load, or a plain unfiltered load if the
// panel has never loaded.
func (c *Controller[T]) Reload(ctx context.Context, token string) ([]T, error) {
	c.mu.Lock()
	filters := c.lastFilters
	c.mu.Unlock()
	return c.Load(ctx, token, filters)
}

// Snapshot returns the currently applied list state.
func (c *Controller[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller[T]) snapshotLocked() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Create submits a new record and reloads the list on success. The created
// record from the backend response is returned; the reload failing does not
// undo the create.
func (c *Controller[T]) Create(ctx context.Context, token string, payload any) (T, error) {
	var created T
	if err := c.client.PostJSON(ctx, c.path, token, payload, &created); err != nil {
		return created, err
	}
	if _, err := c.Reload(ctx, token); err != nil {
		log.Warn().Str("entity", c.entity).Err(err).Msg("list reload after create failed")
	}
	return created, nil
}

// Update applies a partial update against the record and reloads the list.
func (c *Controller[T]) Update(ctx context.Context, token, id string, payload any) (T, error) {
	var updated T
	var err error
	switch c.verb {
	case UpdateWithPut:
		err = c.client.PutJSON(ctx, c.path+"/"+id, token, payload, &updated)
	default:
		err = c.client.PatchJSON(ctx, c.path+"/"+id, token, payload, &updated)
	}
	if err != nil {
		return updated, err
	}
	if _, err := c.Reload(ctx, token); err != nil {
		log.Warn().Str("entity", c.entity).Err(err).Msg("list reload after update failed")
	}
	return updated, nil
}

// Remove deletes a record. A declined confirmation short-circuits with
// ErrCanceled and zero backend calls; a confirmed delete issues exactly one
// delete call followed by one list reload.
func (c *Controller[T]) Remove(ctx context.Context, token, id string, confirmed bool) error {
	if !confirmed {
		return ErrCanceled
	}
	if err := c.client.Delete(ctx, c.path+"/"+id, token); err != nil {
		return err
	}
	if _, err := c.Reload(ctx, token); err != nil {
		log.Warn().Str("entity", c.entity).Err(err).Msg("list reload after delete failed")
	}
	return nil
}

// Detail fetches the full record; detail views may carry fields the list
// omits.
func (c *Controller[T]) Detail(ctx context.Context, token, id string) (T, error) {
	var record T
	err := c.client.GetJSON(ctx, c.path+"/"+id, token, nil, &record)
	return record, err
}
