package location

import "strings"

// Qualifier sets stripped during normalization. Order matters for the
// leading set: "port of" must be tried before "port".
var leadingQualifiers = []string{
	"ennore", "port of", "port", "new", "old",
	"north", "south", "east", "west",
	"greater", "inner", "outer",
}

var trailingQualifiers = []string{
	"port", "harbour", "harbor", "terminal", "dock", "city", "town",
}

// Normalize reduces a free-text place name to a comparable form: lowercase,
// trimmed, with at most one leading and one trailing qualifier removed and
// all internal whitespace collapsed away.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	for _, q := range leadingQualifiers {
		if strings.HasPrefix(s, q+" ") {
			s = strings.TrimSpace(strings.TrimPrefix(s, q+" "))
			break
		}
	}

	for _, q := range trailingQualifiers {
		if strings.HasSuffix(s, " "+q) {
			s = strings.TrimSpace(strings.TrimSuffix(s, " "+q))
			break
		}
	}

	return strings.Join(strings.Fields(s), "")
}

// SameLocation reports whether two place names refer to the same real-world
// location. Two normalized names match when they are equal or one contains
// the other. The containment rule is deliberately permissive: shipping the
// same physical port under two name variants ("Shanghai" vs "Port of
// Shanghai") is the failure this guards against, so false positives are
// preferred over false negatives.
func SameLocation(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)

	// A name made entirely of qualifiers normalizes to nothing; containment
	// of the empty string would match everything, so compare the collapsed
	// raw forms instead.
	if na == "" || nb == "" {
		ra := strings.Join(strings.Fields(strings.ToLower(a)), "")
		rb := strings.Join(strings.Fields(strings.ToLower(b)), "")
		return ra == rb
	}

	if na == nb {
		return true
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
