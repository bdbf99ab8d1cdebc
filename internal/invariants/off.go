//go:build !invariants

package invariants

// Enabled is true when the module is built with the invariants tag.
const Enabled = false
