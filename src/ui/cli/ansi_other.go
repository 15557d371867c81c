//go:build !windows

package cli

// EnableANSI is a no-op: other terminals handle escape codes natively.
func EnableANSI() {}
