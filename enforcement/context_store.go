package enforcement

import "sync"

// ContextTransform rewrites the merged query context before it is sent to the
// PDP, e.g. to rename keys or derive values.
type ContextTransform func(map[string]interface{}) map[string]interface{}

// ContextStore holds context shared by every permission check made through an
// enforcer, merged under the per-check context at query time.
type ContextStore struct {
	mutex      sync.RWMutex
	context    map[string]interface{}
	transforms []ContextTransform
}

func NewContextStore() *ContextStore {
	return &ContextStore{context: map[string]interface{}{}}
}

// AddContext merges the given entries into the shared context
func (s *ContextStore) AddContext(context map[string]interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for k, v := range context {
		s.context[k] = v
	}
}

// RegisterTransform appends a transform applied to every derived context
func (s *ContextStore) RegisterTransform(transform ContextTransform) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.transforms = append(s.transforms, transform)
}

// GetDerivedContext merges the shared context with the per-check context
// (per-check wins) and runs the registered transforms over the result.
func (s *ContextStore) GetDerivedContext(queryContext map[string]interface{}) map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	derived := make(map[string]interface{}, len(s.context)+len(queryContext))
	for k, v := range s.context {
		derived[k] = v
	}
	for k, v := range queryContext {
		derived[k] = v
	}
	for _, transform := range s.transforms {
		derived = transform(derived)
	}
	return derived
}
