package variables

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the variables known to a rule set
type Registry struct {
	mu        sync.RWMutex
	variables map[string]Variable
}

func NewRegistry() *Registry {
	return &Registry{variables: make(map[string]Variable)}
}

// Register adds a variable declaration. Names must be unique.
func (r *Registry) Register(v Variable) error {
	if err := v.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.variables[v.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Name)
	}
	r.variables[v.Name] = v
	return nil
}

func (r *Registry) Get(name string) (Variable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.variables[name]
	if !ok {
		return Variable{}, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	return v, nil
}

// List returns every registered variable sorted by name
func (r *Registry) List() []Variable {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Variable, 0, len(r.variables))
	for _, v := range r.variables {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.variables)
}
