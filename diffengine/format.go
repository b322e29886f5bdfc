package diffengine

import "fmt"

// FormatSummary renders a one-line human-readable summary, e.g.
// "3 added, 1 moved, identical=false". Counts at zero are omitted except
// when every count is zero, in which case it reports "no changes".
func FormatSummary(s Summary) string {
	type kv struct {
		label string
		n     int
	}
	parts := []kv{
		{"added", s.Counts.Added},
		{"removed", s.Counts.Removed},
		{"moved", s.Counts.Moved},
		{"resized", s.Counts.Resized},
		{"text_changed", s.Counts.TextChanged},
		{"interactive_changed", s.Counts.InteractiveChanged},
		{"role_changed", s.Counts.RoleChanged},
		{"children_changed", s.Counts.ChildrenChanged},
	}

	out := ""
	for _, p := range parts {
		if p.n == 0 {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%d %s", p.n, p.label)
	}
	if out == "" {
		out = "no changes"
	}
	return fmt.Sprintf("%s, identical=%t", out, s.Identical)
}
