package metrics

import "strings"

// nameReplacer maps characters prometheus rejects in metric names to underscores.
var nameReplacer = strings.NewReplacer(" ", "_", ".", "_", "-", "_", "=", "_", "/", "_", ":", "_")

func FlattenName(name string) string {
	return nameReplacer.Replace(strings.ToLower(name))
}

// BuildFQName joins the non-empty parts with underscores and flattens the result.
func BuildFQName(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			parts = append(parts, n)
		}
	}
	return FlattenName(strings.Join(parts, "_"))
}
