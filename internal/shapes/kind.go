package shapes

import "fmt"

// Kind is one of the closed set of drawable shapes.
type Kind int

const (
	Circle Kind = iota
	Square
	Rectangle
	Triangle
	Star
	Diamond
)

var kindNames = [...]string{
	Circle:    "circle",
	Square:    "square",
	Rectangle: "rectangle",
	Triangle:  "triangle",
	Star:      "star",
	Diamond:   "diamond",
}

// Kinds returns every kind in the default label order.
func Kinds() []Kind {
	return []Kind{Circle, Square, Rectangle, Triangle, Star, Diamond}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a shape name such as "star".
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape: %s", name)
}

// ParseKinds resolves a list of names, rejecting unknown and repeated ones.
func ParseKinds(names []string) ([]Kind, error) {
	out := make([]Kind, 0, len(names))
	seen := make(map[Kind]bool, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		if seen[k] {
			return nil, fmt.Errorf("duplicate shape: %s", n)
		}
		seen[k] = true
		out = append(out, k)
	}
	return out, nil
}

// MarshalText encodes k as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown shape kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a shape name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
