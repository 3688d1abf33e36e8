package objfile

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/medium"
	"github.com/katalvlaran/wavegrid/mesh"
	"github.com/katalvlaran/wavegrid/meshbuild"
	"github.com/katalvlaran/wavegrid/octree"
)

// countRecords tallies v lines and f lines by index arity.
func countRecords(t *testing.T, out string) (vLines, edgeFaces, triFaces int) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			vLines++
		case "f":
			switch len(fields) {
			case 3:
				edgeFaces++
			case 4:
				triFaces++
			default:
				t.Fatalf("unexpected face arity in %q", sc.Text())
			}
		}
	}
	require.NoError(t, sc.Err())

	return vLines, edgeFaces, triFaces
}

// TestWriteMesh_RoundTrip: surface export parses back into the same
// positions and faces.
func TestWriteMesh_RoundTrip(t *testing.T) {
	m, err := meshbuild.UnitCube()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteMesh(&sb, m))

	back, err := NewDecoder(strings.NewReader(sb.String())).Decode()
	require.NoError(t, err)
	require.Equal(t, m.VertexCount(), back.VertexCount())
	require.Equal(t, m.FaceCount(), back.FaceCount())
	for i := 0; i < m.VertexCount(); i++ {
		assert.Equal(t, m.Position(i), back.Position(i), "vertex %d", i)
	}
	assert.Equal(t, m.Indices(), back.Indices())
}

// TestWriteOctree_SingleNode covers the 1-node tree: 8
// dedup'd corners, 12 edge records.
func TestWriteOctree_SingleNode(t *testing.T) {
	m, err := meshbuild.UnitCube()
	require.NoError(t, err)
	// A floor larger than the root box keeps the tree at one node.
	o, err := octree.Build(m, geom.Vec3{X: 2, Y: 2, Z: 2})
	require.NoError(t, err)
	require.Equal(t, 1, o.Len())

	var sb strings.Builder
	require.NoError(t, WriteOctree(&sb, o))

	vLines, edgeFaces, triFaces := countRecords(t, sb.String())
	assert.Equal(t, 8, vLines)
	assert.Equal(t, 12, edgeFaces)
	assert.Equal(t, 0, triFaces)

	// The wireframe reads back as vertices without faces.
	back, err := NewDecoder(strings.NewReader(sb.String())).Decode()
	require.NoError(t, err)
	assert.Equal(t, 8, back.VertexCount())
	assert.Equal(t, 0, back.FaceCount())
}

// TestWriteOctree_Subdivided: 12 edge records per node; corner dedup keeps
// the vertex count at the 27 lattice points of one subdivision level.
func TestWriteOctree_Subdivided(t *testing.T) {
	m, err := meshbuild.UnitCube()
	require.NoError(t, err)
	o, err := octree.Build(m, geom.Vec3{X: 0.9, Y: 0.9, Z: 0.9})
	require.NoError(t, err)
	require.Equal(t, 9, o.Len(), "root plus one level of 8 children")

	var sb strings.Builder
	require.NoError(t, WriteOctree(&sb, o))

	vLines, edgeFaces, _ := countRecords(t, sb.String())
	assert.Equal(t, 12*o.Len(), edgeFaces)
	assert.Equal(t, 27, vLines, "8 root corners + centers shared across children")
}

// TestWriteMeshAABB: one box for a non-empty mesh, nothing for an empty
// one.
func TestWriteMeshAABB(t *testing.T) {
	m, err := meshbuild.UnitCube()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteMeshAABB(&sb, m))
	vLines, edgeFaces, _ := countRecords(t, sb.String())
	assert.Equal(t, 8, vLines)
	assert.Equal(t, 12, edgeFaces)

	empty, err := mesh.AssignBuffers(nil, 0, mesh.VertexF64, nil, 0, mesh.IndexU32)
	require.NoError(t, err)
	sb.Reset()
	require.NoError(t, WriteMeshAABB(&sb, empty))
	assert.Empty(t, strings.TrimSpace(sb.String()))
}

// TestWriteMedium: partitions share corners through dedup; every box
// contributes its 12 edges.
func TestWriteMedium(t *testing.T) {
	med := &medium.Medium{
		Boundary: geom.NewAABB(geom.Vec3{}, geom.Vec3{X: 2, Y: 1, Z: 1}),
		GridSize: geom.Vec3{X: 1, Y: 1, Z: 1},
		Partitions: []medium.Partition{
			{AABB: geom.NewAABB(geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}), SoundSpeed: 1},
			{AABB: geom.NewAABB(geom.Vec3{X: 1}, geom.Vec3{X: 2, Y: 1, Z: 1}), SoundSpeed: 1},
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteMedium(&sb, med))
	vLines, edgeFaces, _ := countRecords(t, sb.String())
	assert.Equal(t, 12, vLines, "two boxes sharing a 4-corner face")
	assert.Equal(t, 24, edgeFaces)
}
