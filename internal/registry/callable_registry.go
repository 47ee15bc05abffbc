package registry

import (
	"fmt"
	"sync"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
)

// CallableRegistry holds the callables exposed by one module, keyed by
// qualified name. Registration order is preserved.
type CallableRegistry struct {
	callables map[string]models.Callable
	order     []string
	mu        sync.RWMutex
}

var _ CallableRegistryInterface = (*CallableRegistry)(nil)

// NewCallableRegistry creates an empty registry
func NewCallableRegistry() *CallableRegistry {
	return &CallableRegistry{
		callables: make(map[string]models.Callable),
	}
}

// Register adds a callable. A second callable with the same qualified name
// is rejected and the first one is kept.
func (r *CallableRegistry) Register(c models.Callable) error {
	name := c.QualifiedName()
	if c.Name == "" {
		return errors.NewValidationError("callable name", "a non-empty name", `""`).
			WithLocation(c.Location)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.callables[name]; exists {
		return NewDuplicateCallableError(name, c.Location, existing.Location)
	}

	r.callables[name] = c
	r.order = append(r.order, name)
	return nil
}

// List returns the registered callables in registration order
func (r *CallableRegistry) List() []models.Callable {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Callable, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.callables[name])
	}
	return out
}

// NewDuplicateCallableError reports a qualified name registered twice
func NewDuplicateCallableError(name string, loc, previous errors.SourceLocation) *errors.ValidationError {
	err := errors.NewValidationError("callable "+name, "a unique name", "a duplicate").
		WithLocation(loc).
		WithSuggestion(fmt.Sprintf("rename one of them with #[pyo3(name = \"...\")]; first declared at %s", previous))
	err.WithContext("previous", previous.String())
	return err
}
