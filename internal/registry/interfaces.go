package registry

import "github.com/toyz/textsig/internal/models"

// CallableRegistryInterface defines the interface for tracking exposed
// callables by qualified name
type CallableRegistryInterface interface {
	Register(c models.Callable) error
	List() []models.Callable
}
