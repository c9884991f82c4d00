package bordernodata

// floodFill marks every no-data pixel 4-connected to a border no-data pixel.
// BFS over flat indices, seeded from all four edges; mask doubles as the
// visited set since seeds and reachable pixels are exactly the pixels to
// mark.
// Complexity: O(height×width) time and memory.
func floodFill(raster []float32, mask []uint8, height, width int, noData float32) {
	if height <= 0 || width <= 0 {
		return
	}
	queue := make([]int, 0, 2*(height+width))

	seed := func(idx int) {
		if raster[idx] == noData && mask[idx] == 0 {
			mask[idx] = 1
			queue = append(queue, idx)
		}
	}
	for c := 0; c < width; c++ {
		seed(c)
		seed((height-1)*width + c)
	}
	for r := 0; r < height; r++ {
		seed(r * width)
		seed(r*width + width - 1)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		r, c := u/width, u%width
		if r > 0 {
			seed(u - width)
		}
		if r < height-1 {
			seed(u + width)
		}
		if c > 0 {
			seed(u - 1)
		}
		if c < width-1 {
			seed(u + 1)
		}
	}
}
