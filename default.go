package lookup

import "sync"

// Process-wide proxy instance and initialization guard. The package-level
// Init/Get/Set calls operate on it so callers that want a single shared
// registry do not need to thread a Proxy around.
var (
	defaultProxy *Proxy
	defaultOnce  sync.Once
)

// Default returns the shared proxy instance, constructing an empty one on
// first use.
func Default() *Proxy {
	defaultOnce.Do(func() {
		if defaultProxy == nil {
			defaultProxy = New()
		}
	})
	return defaultProxy
}

// SetDefault installs p as the shared proxy. Only the first call to either
// SetDefault or Default has any effect.
func SetDefault(p *Proxy) {
	defaultOnce.Do(func() {
		defaultProxy = p
	})
}

// ResetDefault clears the shared proxy so it can be rebuilt. Not safe for
// concurrent use; intended for tests.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultProxy = nil
}

// Init replaces the shared proxy's registry and handlers wholesale.
func Init(objects map[string]any, handlers []Handler) {
	Default().Init(objects, handlers)
}

// Get performs a lookup against the shared proxy.
func Get(target string, path ...string) any {
	return Default().Get(target, path...)
}

// Set reads a container field off the shared proxy.
func Set(name string) any {
	return Default().Set(name)
}
