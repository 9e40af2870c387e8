// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Asynchronous firmware resource fetching.
package gobtfw

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/glog"
)

//go:generate mockgen -destination=mocks/fetcher.go -package=mocks github.com/google/gobtfw ResourceFetcherInterface
type ResourceFetcherInterface interface {
	// Starts an asynchronous fetch of the named resource. done is invoked
	// exactly once, possibly from another goroutine, with the resource
	// bytes, or with nil when the resource is unavailable. A non-nil error
	// means the request was never submitted and done will not be called.
	RequestResource(name string, done func(data []byte)) error
}

// AsyncFetcher bridges the asynchronous fetch primitive into blocking
// lookups. One fetch is in flight at a time; the completion slot is private
// to each call, so a wake can never be attributed to the wrong request.
type AsyncFetcher struct {
	fetcher ResourceFetcherInterface
	mu      sync.Mutex
	cond    *sync.Cond
}

func NewAsyncFetcher(fetcher ResourceFetcherInterface) *AsyncFetcher {
	a := &AsyncFetcher{fetcher: fetcher}
	a.cond = sync.NewCond(&a.mu)
	return a
}

// Fetch blocks until the named resource resolves. Returns nil bytes without
// error when the resource is unavailable, so the caller can fall through to
// its next source.
func (a *AsyncFetcher) Fetch(name string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	slot := struct {
		data []byte
		done bool
	}{}

	err := a.fetcher.RequestResource(name, func(data []byte) {
		a.mu.Lock()
		slot.data = data
		slot.done = true
		a.mu.Unlock()
		a.cond.Broadcast()
	})
	if err != nil {
		// The completion callback will never fire; bail out before waiting.
		return nil, fmt.Errorf("Submitting fetch for %q: %v", name, err)
	}

	for !slot.done {
		a.cond.Wait()
	}
	return slot.data, nil
}

// DirFetcher serves resources from a firmware directory, completing
// requests from a separate goroutine in the manner of a host resource API.
type DirFetcher struct {
	Dir string
}

func (d *DirFetcher) RequestResource(name string, done func(data []byte)) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("Invalid resource name %q", name)
	}
	go func() {
		data, err := os.ReadFile(filepath.Join(d.Dir, name))
		if err != nil {
			glog.V(1).Infof("Resource %q unavailable: %v", name, err)
			done(nil)
			return
		}
		glog.V(1).Infof("Loaded resource %q (%d bytes)", name, len(data))
		done(data)
	}()
	return nil
}
