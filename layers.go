package bootstrap

// LayersSupported reports whether every requested layer name is offered by
// the host. Matching is exact and case-sensitive. An empty request is
// trivially satisfied; a single missing layer fails the whole check.
func LayersSupported(requested []string, available StringSet) bool {
	for _, layer := range requested {
		if !available.Contains(layer) {
			return false
		}
	}
	return true
}

func missingLayers(requested []string, available StringSet) []string {
	var missing []string
	for _, layer := range requested {
		if !available.Contains(layer) {
			missing = append(missing, layer)
		}
	}
	return missing
}
