package driver

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a driver for one model.
type Factory func(port Port) Driver

var (
	registryMu sync.RWMutex
	registry   = make(map[Model]Factory)
)

// Register makes a backend available under its model number. Backends call
// this from an init function; importing a backend package for side effects
// is how a program selects which models it can talk to.
func Register(model Model, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[model]; dup {
		panic(fmt.Sprintf("driver: model %d registered twice", model))
	}
	registry[model] = factory
}

// New constructs a driver for the given model, or an error if no backend
// has been registered for it.
func New(model Model, port Port) (Driver, error) {
	registryMu.RLock()
	factory, ok := registry[model]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("driver: unknown rig model %d", model)
	}
	return factory(port), nil
}

// Models returns the registered model numbers in ascending order.
func Models() []Model {
	registryMu.RLock()
	defer registryMu.RUnlock()

	models := make([]Model, 0, len(registry))
	for m := range registry {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i] < models[j] })
	return models
}
