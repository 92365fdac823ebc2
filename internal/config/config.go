// Package config models the configuration record the examples pass around:
// a named resource path plus optional list-valued fields. The record itself
// carries no behavior beyond validation, duplication, and equality; which
// caller owns it at any point is the subject of each example.
package config

// ReserveCapacity is the slot count the reserve and share examples
// pre-allocate for Reserved. Large enough that duplicating the record is
// visibly wasteful, small enough to allocate on any machine.
const ReserveCapacity = 1 << 20

// Config represents a single configuration record.
type Config struct {
	// Path names the resource this record describes. Treated as immutable
	// once constructed.
	Path string `yaml:"path"`

	// Include lists additional resource paths, in load order.
	Include []string `yaml:"include,omitempty"`

	// Reserved is scratch space pre-sized by the caller. Only its length,
	// contents, and capacity matter to the examples; it is never encoded.
	Reserved []string `yaml:"-"`
}

// IsValid reports whether c names a resource path. It borrows c read-only:
// nothing is copied, retained, or mutated, and the caller keeps ownership.
func IsValid(c *Config) bool {
	return c.Path != ""
}

// Clone returns a deep copy of c backed by its own allocations. The copy is
// structurally equal to c at the moment it is taken and fully independent
// afterward: mutating one side never shows through on the other.
func (c Config) Clone() Config {
	dup := Config{Path: c.Path}
	if c.Include != nil {
		dup.Include = make([]string, len(c.Include))
		copy(dup.Include, c.Include)
	}
	if c.Reserved != nil {
		dup.Reserved = make([]string, len(c.Reserved), cap(c.Reserved))
		copy(dup.Reserved, c.Reserved)
	}
	return dup
}

// Equal reports structural equality of two records: same path and same
// list contents. Backing array identity and spare capacity do not count.
func Equal(a, b *Config) bool {
	if a.Path != b.Path {
		return false
	}
	if !stringsEqual(a.Include, b.Include) {
		return false
	}
	return stringsEqual(a.Reserved, b.Reserved)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
