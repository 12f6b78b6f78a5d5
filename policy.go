package localizer

// Policy controls what a resolution call produces once the loader chain is
// exhausted without a hit. Both flags are independent: the default-value
// branch requires UseDefaultOnMissing and a non-nil Request.Default, and is
// always evaluated before the throw/sentinel decision.
type Policy struct {
	UseDefaultOnMissing bool
	ThrowOnMissing      bool
}

// snapshot is the immutable chain+policy pair observed by one resolution
// call. Reconfiguration replaces the whole snapshot atomically so in-flight
// resolutions keep the chain they started with.
type snapshot struct {
	loaders []Loader
	policy  Policy
}

// SetPolicy replaces the missing-resource policy for subsequent resolutions.
func (l *Localizer) SetPolicy(policy Policy) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current := l.state.Load()
	l.state.Store(&snapshot{loaders: current.loaders, policy: policy})
}

// SetLoaders replaces the loader chain for subsequent resolutions.
func (l *Localizer) SetLoaders(loaders ...Loader) {
	l.mu.Lock()
	defer l.mu.Unlock()
	current := l.state.Load()
	l.state.Store(&snapshot{loaders: cloneLoaders(loaders), policy: current.policy})
}

// AddLoader appends a loader to the end of the chain.
func (l *Localizer) AddLoader(loader Loader) {
	if loader == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	current := l.state.Load()
	loaders := make([]Loader, 0, len(current.loaders)+1)
	loaders = append(loaders, current.loaders...)
	loaders = append(loaders, loader)
	l.state.Store(&snapshot{loaders: loaders, policy: current.policy})
}

// Policy returns the policy observed by the next resolution call.
func (l *Localizer) Policy() Policy {
	return l.state.Load().policy
}

// Loaders returns a copy of the current loader chain in registration order.
func (l *Localizer) Loaders() []Loader {
	current := l.state.Load()
	if len(current.loaders) == 0 {
		return nil
	}
	return append([]Loader(nil), current.loaders...)
}
