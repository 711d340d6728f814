package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/Mincutx/pkg/util"
)

const (
	METIS_COMMENT     = "%"
	EDGE_LIST_COMMENT = "#"
	BZIP2_EXTENSION   = ".bz2"
)

func fields(s string) []string {
	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var err error
	for i := len(rc.closers) - 1; i >= 0; i-- {
		if cerr := rc.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openGraphFile opens filename, transparently decompressing .bz2 files.
func openGraphFile(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, BZIP2_EXTENSION) {
		return f, nil
	}

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{Reader: bz, closers: []io.Closer{f, bz}}, nil
}

/*
ReadMetisGraph reads a graph in METIS format:

	% comment lines
	n m [fmt [ncon]]
	adjacency list of vertex 1 (1-based neighbour ids)
	...
	adjacency list of vertex n

fmt is a bit string whose last digit says edge weights follow every neighbour
id and whose second-to-last digit says ncon vertex weights start every line.
Every adjacency entry becomes one directed compact edge, so each undirected
METIS edge shows up once in each direction.
*/
func ReadMetisGraph(filename string) (*CompactGraph, error) {
	f, err := openGraphFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadMetis(f)
}

func ReadMetis(r io.Reader) (*CompactGraph, error) {
	br := bufio.NewReader(r)

	line, err := readNonCommentLine(br, METIS_COMMENT)
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrMalformedGraphFile, err)
	}

	tokens := fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedGraphFile, line)
	}

	numVertices, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("%w: vertex count: %v", ErrMalformedGraphFile, err)
	}
	numEdges, err := strconv.Atoi(tokens[1])
	if err != nil || numEdges < 0 {
		return nil, fmt.Errorf("%w: edge count %q", ErrMalformedGraphFile, tokens[1])
	}

	edgeWeighted, vertexWeighted := false, false
	ncon := 1
	if len(tokens) >= 3 {
		format := tokens[2]
		for _, c := range format {
			if c != '0' && c != '1' {
				return nil, fmt.Errorf("%w: format %q", ErrMalformedGraphFile, format)
			}
		}
		edgeWeighted = format[len(format)-1] == '1'
		vertexWeighted = len(format) >= 2 && format[len(format)-2] == '1'
	}
	if len(tokens) == 4 {
		ncon, err = strconv.Atoi(tokens[3])
		if err != nil || ncon < 1 {
			return nil, fmt.Errorf("%w: ncon %q", ErrMalformedGraphFile, tokens[3])
		}
	}

	edges := make([]CompactEdge, 0, 2*numEdges)
	for u := Index(0); u < numVertices; u++ {
		line, err = readNonCommentLine(br, METIS_COMMENT)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// trailing isolated vertices may be left out
				break
			}
			return nil, err
		}

		tokens = fields(line)
		if vertexWeighted {
			if len(tokens) < ncon {
				return nil, fmt.Errorf("%w: vertex %d is missing its weights", ErrMalformedGraphFile, u+1)
			}
			tokens = tokens[ncon:]
		}

		step := 1
		if edgeWeighted {
			step = 2
			if len(tokens)%2 != 0 {
				return nil, fmt.Errorf("%w: vertex %d has an unpaired edge weight", ErrMalformedGraphFile, u+1)
			}
		}

		for i := 0; i < len(tokens); i += step {
			v, err := ParseIndex(tokens[i])
			if err != nil || v < 1 || v > numVertices {
				return nil, fmt.Errorf("%w: vertex %d has neighbour %q", ErrMalformedGraphFile, u+1, tokens[i])
			}
			weight := 1
			if edgeWeighted {
				weight, err = strconv.Atoi(tokens[i+1])
				if err != nil || weight < 0 {
					return nil, fmt.Errorf("%w: vertex %d has edge weight %q", ErrMalformedGraphFile, u+1, tokens[i+1])
				}
			}
			edges = append(edges, NewWeightedCompactEdge(u, v-1, weight))
		}
	}

	if len(edges) != 2*numEdges {
		return nil, fmt.Errorf("%w: header declares %d edges, adjacency lists hold %d entries",
			ErrMalformedGraphFile, numEdges, len(edges))
	}

	return NewCompactGraphWithNodes(int(numVertices), edges)
}

// readNonCommentLine returns the next line that does not start with comment.
// Empty lines are returned, they are isolated vertices in METIS.
func readNonCommentLine(br *bufio.Reader, comment string) (string, error) {
	for {
		line, err := util.ReadLine(br)
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(strings.TrimSpace(line), comment) {
			continue
		}
		return line, nil
	}
}

// WriteMetisGraph writes g as an undirected METIS graph, collapsing arcs the
// same way the engine does. Weights are written only when some edge is not 1.
func WriteMetisGraph(filename string, g *CompactGraph) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(filename, BZIP2_EXTENSION) {
		bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			return err
		}
		defer bz.Close()
		w = bz
	}

	return WriteMetis(w, g)
}

func WriteMetis(w io.Writer, g *CompactGraph) error {
	bw := bufio.NewWriter(w)

	undirected := CollapseUndirected(g)
	type neighbour struct {
		v      Index
		weight int
	}
	adj := make([][]neighbour, g.NumberOfVertices())
	weighted := false
	for _, e := range undirected {
		adj[e.u] = append(adj[e.u], neighbour{e.v, e.weight})
		adj[e.v] = append(adj[e.v], neighbour{e.u, e.weight})
		if e.weight != 1 {
			weighted = true
		}
	}

	if weighted {
		fmt.Fprintf(bw, "%d %d 1\n", g.NumberOfVertices(), len(undirected))
	} else {
		fmt.Fprintf(bw, "%d %d\n", g.NumberOfVertices(), len(undirected))
	}

	for u := range adj {
		for i, nb := range adj[u] {
			if i > 0 {
				fmt.Fprintf(bw, " ")
			}
			if weighted {
				fmt.Fprintf(bw, "%d %d", nb.v+1, nb.weight)
			} else {
				fmt.Fprintf(bw, "%d", nb.v+1)
			}
		}
		fmt.Fprintf(bw, "\n")
	}

	return bw.Flush()
}

/*
ReadEdgeListModel reads a text edge list into a string-labelled GraphModel:

	# comment
	u v      directed edge u -> v
	w        isolated node w

With undirected set, every edge line adds both directions.
*/
func ReadEdgeListModel(filename string, undirected bool) (*GraphModel[string], error) {
	f, err := openGraphFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadEdgeList(f, undirected)
}

func ReadEdgeList(r io.Reader, undirected bool) (*GraphModel[string], error) {
	br := bufio.NewReader(r)
	model := NewEmptyGraphModel[string]()

	lineNumber := 0
	for {
		line, err := util.ReadLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		lineNumber++

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, EDGE_LIST_COMMENT) {
			continue
		}

		tokens := fields(trimmed)
		switch len(tokens) {
		case 1:
			model.AddNode(tokens[0])
		case 2:
			if undirected {
				model.AddUndirectedEdge(tokens[0], tokens[1])
			} else {
				model.AddEdge(tokens[0], tokens[1])
			}
		default:
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedGraphFile, lineNumber, len(tokens))
		}
	}

	return model, nil
}
