package appointments

import (
	"sync"

	kvRepo "medigen/database/repository/kv"
	"medigen/utils"
)

// Registry hands out one Store per signed-in user, created on first use.
type Registry struct {
	mu       sync.Mutex
	kv       kvRepo.Store
	ordering Ordering
	stores   map[string]*Store
}

func NewRegistry(kv kvRepo.Store, ordering Ordering) *Registry {
	return &Registry{kv: kv, ordering: ordering, stores: make(map[string]*Store)}
}

func (r *Registry) For(uid string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[uid]; ok {
		return s
	}
	s := NewStore(r.kv, kvRepo.UserKey(uid, utils.AppointmentsKey), r.ordering)
	r.stores[uid] = s
	return s
}

// Forget drops the cached store for uid, so the next use rehydrates from
// storage. Called on sign-out.
func (r *Registry) Forget(uid string) {
	r.mu.Lock()
	delete(r.stores, uid)
	r.mu.Unlock()
}
