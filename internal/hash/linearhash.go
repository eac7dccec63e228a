package hash

// linearProbe - Implements Linear Probing
func linearProbe(hf1Value, iteration, tableSize int64) int64 {
	probe := hf1Value + iteration%tableSize
	if probe >= tableSize {
		probe -= tableSize
	}

	return probe
}
