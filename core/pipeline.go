package core

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/static-cache/static-cache/storage"
)

// Pipeline resolves request targets to servable entries. It composes
// the resolver, the content cache and the backing store: the cache is
// checked first by resolved path, and on a miss the store is read and
// the result cached.
type Pipeline struct {
	cache    *Cache
	store    storage.Store
	resolver Resolver
}

func NewPipeline(cache *Cache, store storage.Store, resolver Resolver) *Pipeline {
	return &Pipeline{
		cache:    cache,
		store:    store,
		resolver: resolver,
	}
}

// Resolve produces the entry to serve for a request target. It
// returns storage.ErrNotFound when neither the direct path nor the
// directory-index fallback resolves; that is a normal outcome, not a
// fault, and the caller is expected to emit a not-found response.
//
// The cache key is the path actually loaded, and only the direct
// path is ever looked up in the cache. A fallback load is therefore
// cached under the index path, where it serves later requests that
// name the index path directly; a repeated request for the directory
// itself goes back to storage every time.
func (p *Pipeline) Resolve(target string) (Entry, error) {
	path := p.resolver.Resolve(target)

	if entry, ok := p.cache.Get(path); ok {
		log.Trace().Str("key", path).Msg("Cache hit")
		return entry, nil
	}

	if entry, err := p.load(path); err == nil {
		return entry, nil
	}

	fallback := p.resolver.ResolveIndex(target)
	if entry, err := p.load(fallback); err == nil {
		return entry, nil
	}

	log.Debug().Str("target", target).Msg("No content for target")
	return Entry{}, storage.ErrNotFound
}

// load reads path from the store and caches the result. The store
// read happens with no cache lock held. Faults other than absence
// are logged and then collapsed into absence.
func (p *Pipeline) load(path string) (Entry, error) {
	bytes, err := p.store.Load(path)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(err).Str("path", path).Msg("Could not load content")
		}
		return Entry{}, storage.ErrNotFound
	}
	contentType := MimeType(path)
	p.cache.Put(path, contentType, bytes)
	log.Trace().Str("key", path).Int("size", len(bytes)).Msg("Cache write")
	return Entry{
		Key:         path,
		ContentType: contentType,
		Content:     bytes,
		Size:        len(bytes),
	}, nil
}
