package repository

import (
	"sync"
	"time"

	"github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/service/cache"
	"golang.org/x/xerrors"
)

type impl struct {
	// serializes read-modify-write, the cache itself is safe for concurrent use
	mu    sync.Mutex
	cache cache.Service
	now   func() time.Time
}

// New keeps sessions in c, every write restarts the session's ttl
func New(c cache.Service) domain.SessionRepo {
	return &impl{cache: c, now: time.Now}
}

func (im *impl) Create(c ctx.Ctx, s *domain.Session) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	s.UpdatedAt = im.now()
	return im.cache.Set(c, s.Id, s)
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*domain.Session, error) {
	s := &domain.Session{}
	if err := im.cache.Get(c, id, s); err == cache.ErrNotFound {
		return nil, xerrors.Errorf("session %s: %w", id, domain.ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

func (im *impl) Update(c ctx.Ctx, id string, fn func(*domain.Session)) (*domain.Session, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	s, err := im.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	fn(s)
	s.Id = id
	s.UpdatedAt = im.now()
	if err := im.cache.Set(c, id, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (im *impl) Delete(c ctx.Ctx, id string) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if _, err := im.FindOne(c, id); err != nil {
		return err
	}
	return im.cache.Del(c, id)
}
