package maze

// Cell is a single grid cell. Cells start out as unvisited walls; generation
// carves passages and records visits. The visited flag only matters while
// generation is running.
type Cell struct {
	Wall    bool
	Visited bool
}
