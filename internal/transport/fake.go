package transport

import (
	"context"
	"sync"
)

// Fake is an in-process Transport recording every POST it receives and
// replaying a scripted sequence of responses/errors, used by the
// handler's and the facade's end-to-end tests (§8) in place of a real
// collector.
type Fake struct {
	mu sync.Mutex

	Posts []FakePost

	// Responses, if non-nil, is consumed in order: index i answers the
	// (i+1)th call to Post. Once exhausted, DefaultResponse/DefaultErr
	// answer every subsequent call.
	Responses       []FakeResponse
	DefaultResponse []byte
	DefaultErr      error
}

// FakePost records one call to Post.
type FakePost struct {
	Path string
	Body []byte
}

// FakeResponse scripts one Post's outcome.
type FakeResponse struct {
	Body []byte
	Err  error
}

// Post implements Transport.
func (f *Fake) Post(_ context.Context, path string, body []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bodyCopy := append([]byte(nil), body...)
	f.Posts = append(f.Posts, FakePost{Path: path, Body: bodyCopy})

	idx := len(f.Posts) - 1
	if idx < len(f.Responses) {
		r := f.Responses[idx]
		return r.Body, r.Err
	}
	return f.DefaultResponse, f.DefaultErr
}

// Count returns the number of Post calls observed so far.
func (f *Fake) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Posts)
}

// PostsSnapshot returns a copy of every Post call observed so far, in
// call order.
func (f *Fake) PostsSnapshot() []FakePost {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FakePost, len(f.Posts))
	copy(out, f.Posts)
	return out
}
