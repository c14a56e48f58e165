//go:build !unix

package cardart

// CellSize returns the default cell size; pixel metrics are not queried on
// this platform.
func CellSize() (cellW, cellH int) {
	return defaultCellW, defaultCellH
}
