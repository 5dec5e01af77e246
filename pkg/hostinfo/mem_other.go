//go:build !linux && !darwin

package hostinfo

// totalMemory is not implemented here; reports are labelled "unknown".
func totalMemory() (uint64, bool) {
	return 0, false
}
