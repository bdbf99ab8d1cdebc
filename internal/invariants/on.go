//go:build invariants

package invariants

// Enabled is true when the module is built with the invariants tag. Trees
// then re-validate their whole structure after every mutation.
const Enabled = true
