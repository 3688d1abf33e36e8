package objfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
)

// TestDecode_Basic parses vertices and triangles, rebasing 1-based
// indices.
func TestDecode_Basic(t *testing.T) {
	src := `# a triangle
v 0 0 0
v 1 0 0
v 0 1 0

f 1 2 3
`
	d := NewDecoder(strings.NewReader(src))
	m, err := d.Decode()
	require.NoError(t, err)
	assert.Empty(t, d.Warnings())

	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())
	assert.Equal(t, geom.Vec3{X: 1}, m.Position(1))
	assert.Equal(t, uint32(0), m.Index(0))
	assert.Equal(t, mesh.Solid(), m.Attribute(0), "OBJ vertices default to Solid")
}

// TestDecode_FanTriangulation: an n-gon face becomes n−2 fan triangles.
func TestDecode_FanTriangulation(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := NewDecoder(strings.NewReader(src)).Decode()
	require.NoError(t, err)
	require.Equal(t, 2, m.FaceCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices())
}

// TestDecode_SlashedFaceGroups: only the leading vertex index of v/vt/vn
// groups is consumed.
func TestDecode_SlashedFaceGroups(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
f 1/1/1 2/2/1 3//1
`
	m, err := NewDecoder(strings.NewReader(src)).Decode()
	require.NoError(t, err)
	assert.Equal(t, 1, m.FaceCount())
}

// TestDecode_UnknownTokensAreRecoverable: unknown record kinds produce
// line-numbered warnings, not failures.
func TestDecode_UnknownTokensAreRecoverable(t *testing.T) {
	src := `v 0 0 0
curv 1 2 3
v 1 0 0
surf 5
v 0 1 0
f 1 2 3
`
	d := NewDecoder(strings.NewReader(src))
	m, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, 1, m.FaceCount())

	warnings := d.Warnings()
	require.Len(t, warnings, 2)
	assert.ErrorIs(t, warnings[0], ErrParse)
	assert.Contains(t, warnings[0].Error(), "line 2")
	assert.Contains(t, warnings[1].Error(), "line 4")
}

// TestDecode_FatalErrors: malformed numerics and dangling indices abort.
func TestDecode_FatalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"bad coordinate", "v 0 zero 0\n", ErrParse},
		{"missing coordinate", "v 0 1\n", ErrParse},
		{"bad face index", "v 0 0 0\nf 1 x 1\n", ErrParse},
		{"index past vertices", "v 0 0 0\nf 1 2 1\n", ErrVertexIndexNotFound},
		{"zero index", "v 0 0 0\nf 0 1 1\n", ErrVertexIndexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDecoder(strings.NewReader(tc.src)).Decode()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestReadFile_OpenFailed maps missing files onto the stable sentinel.
func TestReadFile_OpenFailed(t *testing.T) {
	_, err := ReadFile("testdata/definitely-not-there.obj")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpenFailed)
}
