package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
)

// Decoder reads one Wavefront-OBJ stream into a mesh. Zero-value Decoders
// are not usable; construct with NewDecoder.
type Decoder struct {
	r        io.Reader
	warnings []error
}

// NewDecoder prepares a decoder over r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Warnings returns the recoverable diagnostics collected by Decode:
// unknown record kinds, each wrapped around ErrParse with its line number.
func (d *Decoder) Warnings() []error { return d.warnings }

// Decode parses the stream. `v` records become vertices (attribute Solid —
// OBJ carries no acoustic data), `f` records become fan-triangulated
// triangles with indices rebased to 0; comments and blank lines are
// skipped; known-but-unused record kinds (vn, vt, vp, o, g, s, mtllib,
// usemtl, l) are ignored silently; anything else is collected as a warning. Malformed
// numeric fields are fatal ErrParse; face indices past the vertex list are
// fatal ErrVertexIndexNotFound.
// Complexity: O(input).
func (d *Decoder) Decode() (*mesh.Mesh, error) {
	var vertices []mesh.Vertex
	var indices []uint32

	scanner := bufio.NewScanner(d.r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrParse, line)
			}
			var p geom.Vec3
			for k := 0; k < 3; k++ {
				x, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: bad coordinate %q", ErrParse, line, fields[k+1])
				}
				p.SetAt(k, geom.Real(x))
			}
			vertices = append(vertices, mesh.Vertex{Position: p, Attr: mesh.Solid()})

		case "f":
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: line %d: face needs at least 2 indices", ErrParse, line)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, f := range fields[1:] {
				// Only the leading vertex index of v/vt/vn groups matters.
				head, _, _ := strings.Cut(f, "/")
				idx, err := strconv.Atoi(head)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: bad face index %q", ErrParse, line, f)
				}
				// OBJ indices are 1-based.
				if idx < 1 || idx > len(vertices) {
					return nil, fmt.Errorf("%w: line %d: index %d of %d vertices", ErrVertexIndexNotFound, line, idx, len(vertices))
				}
				corners = append(corners, uint32(idx-1))
			}
			// Fan triangulation; 2-index edge records contribute no faces.
			for i := 1; i+1 < len(corners); i++ {
				indices = append(indices, corners[0], corners[i], corners[i+1])
			}

		case "vn", "vt", "vp", "o", "g", "s", "mtllib", "usemtl", "l":
			// Recognized record kinds the pipeline has no use for.

		default:
			d.warnings = append(d.warnings,
				fmt.Errorf("%w: line %d: unknown record %q", ErrParse, line, fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrReadFailed, "%v", err)
	}

	return mesh.New(vertices, indices)
}

// ReadFile opens and decodes path. Open failures wrap ErrOpenFailed;
// warnings are discarded — use NewDecoder directly to inspect them.
func ReadFile(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrOpenFailed, "%s: %v", path, err)
	}
	defer f.Close()

	return NewDecoder(f).Decode()
}
