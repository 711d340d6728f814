package translator

type ResultKind int

const (
	BIPARTITION ResultKind = iota
	COMPONENTS
)

func (k ResultKind) String() string {
	switch k {
	case BIPARTITION:
		return "bipartition"
	case COMPONENTS:
		return "components"
	default:
		return "unknown"
	}
}

// Result is a min-cut answer in label space. A BIPARTITION result carries the
// heavy and light sides, a COMPONENTS result carries the connected components
// of a disconnected graph and a cut size of 0.
type Result[L comparable] struct {
	kind       ResultKind
	heavy      []L
	light      []L
	components [][]L
	cutSize    int
}

func NewBipartition[L comparable](heavy, light []L, cutSize int) *Result[L] {
	return &Result[L]{kind: BIPARTITION, heavy: heavy, light: light, cutSize: cutSize}
}

func NewComponents[L comparable](components [][]L) *Result[L] {
	return &Result[L]{kind: COMPONENTS, components: components}
}

func (r *Result[L]) GetKind() ResultKind {
	return r.kind
}

func (r *Result[L]) GetHeavyPartition() []L {
	return r.heavy
}

func (r *Result[L]) GetLightPartition() []L {
	return r.light
}

func (r *Result[L]) GetComponents() [][]L {
	return r.components
}

func (r *Result[L]) GetCutSize() int {
	return r.cutSize
}

// Legacy returns the historical list shape: [heavy, light, cut] for a
// bipartition and [component..., 0] for components.
func (r *Result[L]) Legacy() []any {
	if r.kind == COMPONENTS {
		out := make([]any, 0, len(r.components)+1)
		for _, c := range r.components {
			out = append(out, c)
		}
		return append(out, 0)
	}
	return []any{r.heavy, r.light, r.cutSize}
}
