package catalog

import (
	"context"
	"log"

	"github.com/evergreenlots/treestore-api/config"
	"github.com/evergreenlots/treestore-api/models"
	"github.com/evergreenlots/treestore-api/square"
)

// Lister is the slice of the vendor client the loader needs.
type Lister interface {
	ListCatalog(ctx context.Context) ([]square.CatalogObject, error)
}

// Loader fetches, normalizes and caches the domain catalog. Every
// handler that needs catalog data goes through here.
type Loader struct {
	lister Lister
	cache  *Cache
	store  config.Store
}

func NewLoader(lister Lister, cache *Cache, store config.Store) *Loader {
	return &Loader{lister: lister, cache: cache, store: store}
}

// Load returns the normalized catalog, serving from cache when warm.
func (l *Loader) Load(ctx context.Context) (*models.Catalog, error) {
	if cat, err := l.cache.Get(ctx); err == nil {
		return cat, nil
	} else if err != ErrCacheMiss {
		log.Printf("⚠️ catalog cache read failed: %v", err)
	}

	objects, err := l.lister.ListCatalog(ctx)
	if err != nil {
		return nil, &models.UpstreamDataError{Detail: err.Error()}
	}

	cat, err := Normalize(objects, l.store)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, cat); err != nil {
		log.Printf("⚠️ catalog cache write failed: %v", err)
	}
	return cat, nil
}

// Refresh drops the cached catalog and loads a fresh batch.
func (l *Loader) Refresh(ctx context.Context) (*models.Catalog, error) {
	if err := l.cache.Invalidate(ctx); err != nil {
		return nil, err
	}
	return l.Load(ctx)
}
