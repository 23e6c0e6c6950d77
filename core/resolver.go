package core

// Resolver maps request targets to storage paths by prepending the
// document root. The mapping is pure concatenation: no cleaning of
// dot segments and no percent-decoding is done here, matching the
// server's historical behavior. Callers that need hardening should
// sanitize the target before resolving.
type Resolver struct {
	// Root is the storage path prefix for served content,
	// e.g. "./serverroot".
	Root string
}

// Resolve returns the primary candidate path for a request target.
func (r Resolver) Resolve(target string) string {
	return r.Root + target
}

// ResolveIndex returns the directory-index fallback path for a
// request target, used only after the primary candidate fails to
// load.
func (r Resolver) ResolveIndex(target string) string {
	return r.Root + target + "/index.html"
}
