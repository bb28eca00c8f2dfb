package cache

// RankKeyOpts captures the ranking options that shape a cached rank
// vector. Vectors computed with different options are cached separately.
type RankKeyOpts struct {
	Damping    float64
	Iterations int
	Collapsed  bool
}

// Keyer generates cache keys for the different artifact classes.
// Implementations must be deterministic: equal inputs produce equal keys.
type Keyer interface {
	// CollapseKey generates a key for a collapsed network document,
	// derived from the source network's content hash.
	CollapseKey(networkHash string) string

	// RankKey generates a key for a rank vector.
	RankKey(networkHash string, opts RankKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy: a class prefix
// followed by a SHA-256 hash of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// CollapseKey generates a key for a collapsed network document.
func (k *DefaultKeyer) CollapseKey(networkHash string) string {
	return hashKey("collapse", networkHash)
}

// RankKey generates a key for a rank vector.
func (k *DefaultKeyer) RankKey(networkHash string, opts RankKeyOpts) string {
	return hashKey("ranks", networkHash, opts.Damping, opts.Iterations, opts.Collapsed)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation,
// useful when several feeds share one Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// CollapseKey generates a prefixed collapsed-network key.
func (k *ScopedKeyer) CollapseKey(networkHash string) string {
	return k.prefix + k.inner.CollapseKey(networkHash)
}

// RankKey generates a prefixed rank-vector key.
func (k *ScopedKeyer) RankKey(networkHash string, opts RankKeyOpts) string {
	return k.prefix + k.inner.RankKey(networkHash, opts)
}
