package api

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is a CRUD collection at {base}/{name}/ with items at {base}/{name}/{id}/.
type Resource[T any] struct {
	client *Client
	name   string
}

func NewResource[T any](client *Client, name string) *Resource[T] {
	return &Resource[T]{client: client, name: name}
}

// Name returns the collection path segment
func (r *Resource[T]) Name() string {
	return r.name
}

func (r *Resource[T]) collection() string {
	return r.name + "/"
}

func (r *Resource[T]) item(id string) string {
	return r.name + "/" + url.PathEscape(id) + "/"
}

func (r *Resource[T]) List(ctx context.Context) ([]*T, error) {
	var out []*T
	if err := r.client.Do(ctx, http.MethodGet, r.collection(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	out := new(T)
	if err := r.client.Do(ctx, http.MethodGet, r.item(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Create(ctx context.Context, item *T) (*T, error) {
	out := new(T)
	if err := r.client.Do(ctx, http.MethodPost, r.collection(), item, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the item (PUT).
func (r *Resource[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	out := new(T)
	if err := r.client.Do(ctx, http.MethodPut, r.item(id), item, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Patch updates only the given fields.
func (r *Resource[T]) Patch(ctx context.Context, id string, fields map[string]any) (*T, error) {
	out := new(T)
	if err := r.client.Do(ctx, http.MethodPatch, r.item(id), fields, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.item(id), nil, nil)
}
