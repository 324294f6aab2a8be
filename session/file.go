package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"sync"
)

// FileStore persists the key-value map as a JSON document at an afs URL
// (a local path, file://, mem:// ...). The document is read lazily on first
// use and rewritten as a whole on every mutation.
type FileStore struct {
	mu     sync.Mutex
	fs     afs.Service
	url    string
	values map[string]string
}

type fileSnapshot struct {
	Values map[string]string `json:"values"`
}

// NewFileStore creates a Store persisted at URL.
func NewFileStore(URL string) *FileStore {
	return &FileStore{fs: afs.New(), url: URL}
}

// URL returns the location of the persisted document.
func (f *FileStore) URL() string {
	return f.url
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(ctx); err != nil {
		return "", false, err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(ctx); err != nil {
		return err
	}
	f.values[key] = value
	return f.save(ctx)
}

func (f *FileStore) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(ctx); err != nil {
		return err
	}
	for _, key := range keys {
		delete(f.values, key)
	}
	return f.save(ctx)
}

func (f *FileStore) load(ctx context.Context) error {
	if f.values != nil {
		return nil
	}
	exists, err := f.fs.Exists(ctx, f.url)
	if err != nil {
		return fmt.Errorf("failed to check session file %v: %w", f.url, err)
	}
	if !exists {
		f.values = map[string]string{}
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.url)
	if err != nil {
		return fmt.Errorf("failed to read session file %v: %w", f.url, err)
	}
	var snap fileSnapshot
	if len(bytes.TrimSpace(data)) > 0 {
		if err = json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("failed to decode session file %v: %w", f.url, err)
		}
	}
	if snap.Values == nil {
		snap.Values = map[string]string{}
	}
	f.values = snap.Values
	return nil
}

func (f *FileStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(fileSnapshot{Values: f.values}, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.tmpURL()
	if err = f.fs.Upload(ctx, tmp, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write session file %v: %w", tmp, err)
	}
	return f.fs.Move(ctx, tmp, f.url)
}

// tmpURL keeps the target's name suffix so Move renames in place instead of
// treating the target as a folder.
func (f *FileStore) tmpURL() string {
	parent, name := url.Split(f.url, file.Scheme)
	return url.Join(parent, ".tmp-"+name)
}
