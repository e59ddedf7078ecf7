package silhouette

import "image"

// neighbours in clockwise order starting east (screen coordinates, y down)
var neighbours = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Outline traces the boundary of the first solid blob found in raster order
// and returns every step-th boundary pixel, starting with the first one.
// The result is rebuilt on every call.
func (m *Mask) Outline(step int) []image.Point {
	if step < 1 {
		step = 1
	}

	first, ok := m.firstSolid()
	if !ok {
		return nil
	}

	points := []image.Point{first}

	dir := -1
	for n, d := range neighbours {
		p := first.Add(d)
		if m.Get(p.X, p.Y) {
			dir = n
			break
		}
	}
	if dir < 0 {
		// isolated pixel
		return points
	}

	second := first.Add(neighbours[dir])
	curr := second
	limit := 4*m.width*m.height + 8
	count := 0

	for i := 0; i < limit; i++ {
		next := curr
		for k := 0; k < 8; k++ {
			d := (dir + 6 + k) % 8
			p := curr.Add(neighbours[d])
			if m.Get(p.X, p.Y) {
				next = p
				dir = d
				break
			}
		}

		if curr == first && next == second {
			break
		}

		count++
		if count%step == 0 {
			points = append(points, curr)
		}
		curr = next
	}

	return points
}

func (m *Mask) firstSolid() (image.Point, bool) {
	for y := 0; y < m.height; y++ {
		row := m.row(y)
		for i, w := range row {
			if w == 0 {
				continue
			}
			for k := 0; k < wordBits; k++ {
				if w&(1<<uint(k)) != 0 {
					return image.Pt(i*wordBits+k, y), true
				}
			}
		}
	}
	return image.Point{}, false
}
