package catalog

// Merge composes catalogs ordered from strongest to weakest, returning a new
// catalog that keeps entries from stronger layers while filling missing keys
// from weaker ones. Inputs are not mutated.
func Merge(catalogs ...*Catalog) *Catalog {
	merged := New()
	for i := len(catalogs) - 1; i >= 0; i-- {
		layer := catalogs[i]
		if layer == nil {
			continue
		}
		for v, bucket := range layer.entries {
			merged.AddAll(v, bucket)
		}
	}
	return merged
}
