package octree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavegrid/geom"
	"github.com/katalvlaran/wavegrid/mesh"
	"github.com/katalvlaran/wavegrid/meshbuild"
)

func buildCubeTree(t *testing.T, smallest geom.Vec3) (*Octree, *mesh.Mesh) {
	t.Helper()
	m, err := meshbuild.UnitCube()
	require.NoError(t, err)
	o, err := Build(m, smallest)
	require.NoError(t, err)

	return o, m
}

// faceAABB recomputes a triangle's box directly from the mesh.
func faceAABB(m *mesh.Mesh, face int) geom.AABB {
	return m.FaceAABB(face)
}

// TestBuild_ArgumentErrors covers the construction guards.
func TestBuild_ArgumentErrors(t *testing.T) {
	_, err := Build(nil, geom.Vec3{X: 1, Y: 1, Z: 1})
	assert.ErrorIs(t, err, ErrNilMesh)

	m, err := meshbuild.UnitCube()
	require.NoError(t, err)
	_, err = Build(m, geom.Vec3{X: 1, Y: 0, Z: 1})
	assert.ErrorIs(t, err, ErrCellSize)
	_, err = Build(m, geom.Vec3{X: 1, Y: 1, Z: -0.5})
	assert.ErrorIs(t, err, ErrCellSize)
}

// TestBuild_EmptyMesh: build succeeds, root has an empty IB, queries come
// back empty.
func TestBuild_EmptyMesh(t *testing.T) {
	m, err := mesh.AssignBuffers(nil, 0, mesh.VertexF64, nil, 0, mesh.IndexU32)
	require.NoError(t, err)

	o, err := Build(m, geom.Vec3{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, o.Len())
	assert.Empty(t, o.QueryPotentialFaces(geom.NewAABB(geom.Vec3{X: -10, Y: -10, Z: -10}, geom.Vec3{X: 10, Y: 10, Z: 10})))
}

// TestBuild_RootAliasesMeshIB: the root's index buffer is the mesh's
// canonical view, not a copy.
func TestBuild_RootAliasesMeshIB(t *testing.T) {
	o, m := buildCubeTree(t, geom.Vec3{X: 1, Y: 1, Z: 1})

	require.NotEmpty(t, o.nodes[0].ib)
	want := m.Indices()
	assert.Equal(t, &want[0], &o.nodes[0].ib[0], "root IB must alias the mesh index view")

	// And a whole-box query on the unsplit root returns exactly that IB.
	got := o.QueryPotentialFaces(m.AABB())
	assert.Equal(t, want, got)
}

// TestBuild_StopPredicates: a coarse floor keeps the tree at the root; a
// fine floor subdivides into 8-child arenas.
func TestBuild_StopPredicates(t *testing.T) {
	coarse, _ := buildCubeTree(t, geom.Vec3{X: 2, Y: 2, Z: 2})
	assert.Equal(t, 1, coarse.Len(), "root smaller than the floor must not split")

	fine, _ := buildCubeTree(t, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	assert.Greater(t, fine.Len(), 1)
	assert.Equal(t, 0, (fine.Len()-1)%8, "children are allocated in blocks of 8")

	// Each level halves the box; the floor stops splits below 0.5.
	maxDepthDims := geom.Real(0.25)
	fine.Walk(func(box geom.AABB, leaf bool, _ int) {
		assert.GreaterOrEqual(t, box.Dims().X, maxDepthDims)
	})
}

// TestQueryPotentialFaces_Superset checks the superset guarantee: the query result
// contains every face whose AABB meets the box.
func TestQueryPotentialFaces_Superset(t *testing.T) {
	o, m := buildCubeTree(t, geom.Vec3{X: 0.25, Y: 0.25, Z: 0.25})

	boxes := []geom.AABB{
		geom.NewAABB(geom.Vec3{}, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}),
		geom.NewAABB(geom.Vec3{X: 0.4, Y: 0.4, Z: 0.4}, geom.Vec3{X: 0.6, Y: 0.6, Z: 0.6}),
		geom.NewAABB(geom.Vec3{X: 0.9, Y: 0.9, Z: 0.9}, geom.Vec3{X: 1.1, Y: 1.1, Z: 1.1}),
		geom.NewAABB(geom.Vec3{X: 0, Y: 0, Z: 1}, geom.Vec3{X: 1, Y: 1, Z: 1}), // face-plane slab
	}
	for _, box := range boxes {
		got := o.QueryPotentialFaces(box)
		require.Equal(t, 0, len(got)%3)

		reported := map[[3]uint32]bool{}
		for i := 0; i+2 < len(got); i += 3 {
			reported[[3]uint32{got[i], got[i+1], got[i+2]}] = true
		}
		for f := 0; f < m.FaceCount(); f++ {
			if faceAABB(m, f).Overlaps(box) {
				key := [3]uint32{m.Index(f * 3), m.Index(f*3 + 1), m.Index(f*3 + 2)}
				assert.True(t, reported[key], "face %d with AABB meeting %v must be reported", f, box)
			}
		}
	}
}

// TestQueryPotentialFaces_DisjointBox checks that a box not meeting
// the mesh AABB yields the empty set.
func TestQueryPotentialFaces_DisjointBox(t *testing.T) {
	o, _ := buildCubeTree(t, geom.Vec3{X: 0.25, Y: 0.25, Z: 0.25})
	far := geom.NewAABB(geom.Vec3{X: 5, Y: 5, Z: 5}, geom.Vec3{X: 6, Y: 6, Z: 6})
	assert.Empty(t, o.QueryPotentialFaces(far))
}

// TestWalk reports every node exactly once, root first.
func TestWalk(t *testing.T) {
	o, m := buildCubeTree(t, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5})

	var count, leaves int
	first := true
	o.Walk(func(box geom.AABB, leaf bool, tris int) {
		if first {
			assert.Equal(t, m.AABB(), box, "arena order starts at the root")
			assert.Equal(t, m.FaceCount(), tris)
			first = false
		}
		count++
		if leaf {
			leaves++
		}
	})
	assert.Equal(t, o.Len(), count)
	assert.Greater(t, leaves, 0)
}
