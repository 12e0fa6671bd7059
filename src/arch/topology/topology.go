package topology

import "flexcluster/src/arch"

// Coordinate identifies a cluster position on the 2D mesh.
type Coordinate struct {
	X int
	Y int
}

// ManhattanDistance returns the hop distance between two mesh coordinates.
func ManhattanDistance(a, b Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Mesh places the clusters of an architecture on a row-major grid.
type Mesh struct {
	Cols   int
	Rows   int
	Coords []Coordinate
}

// BuildMesh lays out NumClusterX x NumClusterY clusters. Cluster id i sits at
// column i%NumClusterX and row i/NumClusterX.
func BuildMesh(config arch.ArchitectureConfig) *Mesh {
	mesh := new(Mesh)

	if config.NumClusterX <= 0 || config.NumClusterY <= 0 {
		return mesh
	}

	mesh.Cols = config.NumClusterX
	mesh.Rows = config.NumClusterY
	mesh.Coords = make([]Coordinate, 0, mesh.Cols*mesh.Rows)
	for id := 0; id < mesh.Cols*mesh.Rows; id++ {
		mesh.Coords = append(mesh.Coords, Coordinate{X: id % mesh.Cols, Y: id / mesh.Cols})
	}

	return mesh
}

func (mesh *Mesh) NumClusters() int {
	if mesh == nil {
		return 0
	}
	return len(mesh.Coords)
}

// Coord returns the mesh coordinate of the requested cluster.
func (mesh *Mesh) Coord(id int) (Coordinate, bool) {
	if mesh == nil || id < 0 || id >= len(mesh.Coords) {
		return Coordinate{}, false
	}
	return mesh.Coords[id], true
}

// ClusterID is the inverse of Coord.
func (mesh *Mesh) ClusterID(coord Coordinate) (int, bool) {
	if mesh == nil || coord.X < 0 || coord.Y < 0 || coord.X >= mesh.Cols || coord.Y >= mesh.Rows {
		return 0, false
	}
	return coord.Y*mesh.Cols + coord.X, true
}

// HopDistance calculates the Manhattan distance between two clusters. Unknown
// ids yield 0.
func (mesh *Mesh) HopDistance(src, dst int) int {
	a, okA := mesh.Coord(src)
	b, okB := mesh.Coord(dst)
	if !okA || !okB {
		return 0
	}
	return ManhattanDistance(a, b)
}
