package weapons

// ─── Cluster hits table ─────────────────────────────────────────────────────

var clusterColumns = [...]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 20, 30, 40}

// ClusterColumns returns a copy of the cluster sizes the table defines.
// Sizes between columns use the next smaller column.
func ClusterColumns() []int {
	out := make([]int, len(clusterColumns))
	copy(out, clusterColumns[:])
	return out
}

var clusterTable = [11][len(clusterColumns)]int{
	{1, 1, 1, 1, 2, 2, 3, 3, 3, 4, 5, 6, 10, 12},     // roll 2
	{1, 1, 2, 2, 2, 2, 3, 3, 3, 4, 5, 6, 10, 12},     // roll 3
	{1, 1, 2, 2, 3, 3, 4, 4, 4, 5, 6, 9, 12, 18},     // roll 4
	{1, 2, 2, 3, 3, 4, 4, 5, 6, 8, 9, 12, 18, 24},    // roll 5
	{1, 2, 2, 3, 4, 4, 5, 5, 6, 8, 9, 12, 18, 24},    // roll 6
	{1, 2, 3, 3, 4, 4, 5, 5, 6, 8, 9, 12, 18, 24},    // roll 7
	{2, 2, 3, 3, 4, 4, 5, 5, 6, 8, 9, 12, 18, 24},    // roll 8
	{2, 2, 3, 4, 5, 6, 6, 7, 8, 10, 12, 16, 24, 32},  // roll 9
	{2, 3, 3, 4, 5, 6, 6, 7, 8, 10, 12, 16, 24, 32},  // roll 10
	{2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 20, 30, 40}, // roll 11
	{2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 20, 30, 40}, // roll 12
}

// ClampRoll forces a cluster roll into the table's 2-12 domain.
func ClampRoll(roll int) int {
	if roll < 2 {
		return 2
	}
	if roll > 12 {
		return 12
	}
	return roll
}

// clusterColumn returns the index of the largest column not above size,
// or -1 when size is below the smallest column.
func clusterColumn(size int) int {
	col := -1
	for i, cs := range clusterColumns {
		if cs <= size {
			col = i
		}
	}
	return col
}

// ClusterHits looks up how many of size munitions hit on roll. It never
// fails: rolls are clamped and sizes round down to a defined column.
// Racks smaller than two hit with everything they have.
func ClusterHits(roll, size int) int {
	if size <= 0 {
		return 0
	}
	col := clusterColumn(size)
	if col < 0 {
		return size
	}
	return clusterTable[ClampRoll(roll)-2][col]
}

// ClusterAverage returns the expected number of hits for size on an
// unmodified 2d6 roll.
func ClusterAverage(size int) float64 {
	// Weights for 2d6 results 2-12: 1,2,3,4,5,6,5,4,3,2,1 (out of 36)
	weights := [11]int{1, 2, 3, 4, 5, 6, 5, 4, 3, 2, 1}
	weighted := 0.0
	for row := 0; row < 11; row++ {
		weighted += float64(ClusterHits(row+2, size)) * float64(weights[row])
	}
	return weighted / 36.0
}
