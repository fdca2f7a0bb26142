package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"
)

// MemoryObject is a stored object of a MemoryProvider.
type MemoryObject struct {
	Data        []byte
	ContentType string
}

// MemoryProvider keeps objects in process. It backs tests and local runs
// with storage disabled.
type MemoryProvider struct {
	mu      sync.RWMutex
	objects map[string]MemoryObject
	baseURL string
}

func NewMemoryProvider(baseURL string) *MemoryProvider {
	if baseURL == "" {
		baseURL = "memory://objects"
	}
	return &MemoryProvider{objects: map[string]MemoryObject{}, baseURL: baseURL}
}

func (m *MemoryProvider) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = MemoryObject{Data: buf.Bytes(), ContentType: contentType}
	return nil
}

func (m *MemoryProvider) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MemoryProvider) SignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	return fmt.Sprintf("%s/%s?expires=%d", m.baseURL, url.PathEscape(key), int64(expires.Seconds())), nil
}

// Object returns the object stored at key.
func (m *MemoryProvider) Object(key string) (MemoryObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// Len reports the number of stored objects.
func (m *MemoryProvider) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
