package units

import (
	"sort"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/registry"
)

// Registry maps unit symbols and aliases to units, and prefix symbols to
// prefixes. Reads are lock-free with respect to each other; writes are
// serialized so a multi-name registration is checked and applied as a whole.
type Registry struct {
	writeMu  sync.Mutex
	units    registry.Registry[Unit]
	prefixes registry.Registry[Prefix]
	// longest prefix symbol, in bytes
	maxPrefix atomic.Int64
}

// NewRegistry returns an empty registry with no units and no prefixes.
func NewRegistry() *Registry {
	return &Registry{
		units:    registry.New[Unit](),
		prefixes: registry.New[Prefix](),
	}
}

// Register binds the unit's symbol and every alias. Re-registering an
// identical definition is a no-op; binding any name to a different
// definition fails with DUPLICATE_UNIT and leaves the registry unchanged.
func (r *Registry) Register(u Unit) error {
	if err := u.Validate(); err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var fresh []string
	seen := make(map[string]bool)
	for _, name := range u.Names() {
		if seen[name] {
			continue
		}
		seen[name] = true

		existing, ok := r.units.Lookup(name)
		if !ok {
			fresh = append(fresh, name)
			continue
		}
		if !existing.sameDefinition(u) {
			return errors.Newf(errors.ErrDuplicateUnit,
				"unit %q is already registered as %q with a different definition", name, existing.Symbol).
				WithDetail("symbol", name).
				WithDetail("existing", existing.Symbol)
		}
	}

	if len(fresh) == 0 {
		return nil
	}
	if r.units.Frozen() {
		return errors.Newf(errors.ErrRegistryFrozen, "cannot register unit %q: registry is frozen", u.Symbol).
			WithDetail("symbol", u.Symbol)
	}

	for _, name := range fresh {
		if err := r.units.Register(name, u); err != nil {
			return err
		}
	}

	log := logging.GetLogger("units")
	log.Trace().
		Str("symbol", u.Symbol).
		Strs("names", fresh).
		Str("dimension", u.Dimension.String()).
		Float64("scale", u.Scale).
		Msg("Registered unit")
	return nil
}

// MustRegister registers u and panics on failure. Used for built-in tables.
func (r *Registry) MustRegister(u Unit) {
	if err := r.Register(u); err != nil {
		panic(err)
	}
}

// RegisterPrefix adds a prefix. Identical re-registration is a no-op.
func (r *Registry) RegisterPrefix(p Prefix) error {
	if p.Symbol == "" {
		return errors.New(errors.ErrUnitDefinition, "prefix symbol cannot be empty")
	}
	if !IsSymbol(p.Symbol) {
		return errors.Newf(errors.ErrUnitDefinition, "prefix %q can only contain letters, '°' and '_'", p.Symbol).
			WithDetail("prefix", p.Symbol)
	}
	if !isFinite(p.Factor) || p.Factor <= 0 {
		return errors.Newf(errors.ErrUnitDefinition, "prefix %q: factor must be a positive finite number, got %g", p.Symbol, p.Factor).
			WithDetail("prefix", p.Symbol)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if existing, ok := r.prefixes.Lookup(p.Symbol); ok {
		if closeEnough(existing.Factor, p.Factor) {
			return nil
		}
		return errors.Newf(errors.ErrDuplicateUnit, "prefix %q is already registered with factor %g", p.Symbol, existing.Factor).
			WithDetail("prefix", p.Symbol)
	}

	if err := r.prefixes.Register(p.Symbol, p); err != nil {
		return err
	}
	if n := int64(len(p.Symbol)); n > r.maxPrefix.Load() {
		r.maxPrefix.Store(n)
	}
	return nil
}

// Lookup resolves symbol by exact match, then by stripping the longest
// registered prefix whose remainder is a prefixable unit. It fails with
// UNKNOWN_UNIT when neither works.
func (r *Registry) Lookup(symbol string) (Match, error) {
	if u, ok := r.units.Lookup(symbol); ok {
		return Match{Symbol: symbol, Unit: u, Scale: u.Scale, Offset: u.Offset}, nil
	}

	for i := min(int(r.maxPrefix.Load()), len(symbol)-1); i > 0; i-- {
		if !utf8.RuneStart(symbol[i]) {
			continue
		}
		p, ok := r.prefixes.Lookup(symbol[:i])
		if !ok {
			continue
		}
		u, ok := r.units.Lookup(symbol[i:])
		if !ok || !u.Prefixable || u.IsAffine() {
			continue
		}
		return Match{Symbol: symbol, Unit: u, Prefix: p, Scale: p.Factor * u.Scale}, nil
	}

	return Match{}, errors.Newf(errors.ErrUnknownUnit, "unknown unit %q", symbol).
		WithDetail("symbol", symbol)
}

// Has reports whether symbol resolves, with or without a prefix.
func (r *Registry) Has(symbol string) bool {
	_, err := r.Lookup(symbol)
	return err == nil
}

// Freeze makes the registry read-only. Later registrations fail with
// REGISTRY_FROZEN, except idempotent ones.
func (r *Registry) Freeze() {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	r.units.Freeze()
	r.prefixes.Freeze()
	log := logging.GetLogger("units")
	log.Debug().Int("names", r.units.Count()).Msg("Registry frozen")
}

func (r *Registry) Frozen() bool {
	return r.units.Frozen()
}

// Generation changes whenever a unit name or prefix is added. Caches keyed
// on it never serve stale results.
func (r *Registry) Generation() uint64 {
	return r.units.Version() + r.prefixes.Version()
}

// Symbols returns every registered symbol and alias, sorted.
func (r *Registry) Symbols() []string {
	return r.units.List()
}

// Units returns each distinct unit once, sorted by symbol.
func (r *Registry) Units() []Unit {
	var out []Unit
	r.units.Each(func(name string, u Unit) bool {
		if name == u.Symbol {
			out = append(out, u)
		}
		return true
	})
	return out
}

// UnitsFor returns the units whose dimension equals dim, sorted by symbol.
func (r *Registry) UnitsFor(dim dimension.Dimension) []Unit {
	var out []Unit
	for _, u := range r.Units() {
		if u.Dimension == dim {
			out = append(out, u)
		}
	}
	return out
}

// Prefixes returns the registered prefixes ordered by factor, largest first.
func (r *Registry) Prefixes() []Prefix {
	var out []Prefix
	r.prefixes.Each(func(_ string, p Prefix) bool {
		out = append(out, p)
		return true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Factor > out[j].Factor })
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, built with the built-in table
// on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewDefaultRegistry()
	})
	return defaultRegistry
}

// NewDefaultRegistry returns a fresh registry loaded with the SI prefixes
// and the built-in units.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range siPrefixes {
		if err := r.RegisterPrefix(p); err != nil {
			panic(err)
		}
	}
	for _, u := range builtinUnits {
		r.MustRegister(u)
	}
	log := logging.GetLogger("units")
	log.Debug().
		Int("units", len(builtinUnits)).
		Int("prefixes", len(siPrefixes)).
		Msg("Built default unit registry")
	return r
}
