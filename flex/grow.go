package flex

// grow distributes amount over the items of a line in proportion to their
// grow factors, honoring max sizes. Space refused by items that hit their
// max is handed to the others in the next round. It returns the amount
// actually distributed.
func (l *layouter) grow(items []ID, amount float64) float64 {
	t := l.tree
	horizontal := l.c.horizontal

	done := l.scratch(len(items))
	var weight float64
	for i, id := range items {
		it := t.slot(id).item
		if it.grow <= 0 {
			done[i] = true
			continue
		}
		if m := it.maxSize(horizontal); m > 0 && t.axisSize(id, horizontal) >= m {
			done[i] = true
			continue
		}
		weight += it.grow
	}

	remaining := amount
	for round := 0; round <= len(items) && remaining > epsilon && weight > 0; round++ {
		perGrow := remaining / weight
		for i, id := range items {
			if done[i] {
				continue
			}
			it := t.slot(id).item
			size := t.axisSize(id, horizontal)
			delta := it.grow * perGrow
			if m := it.maxSize(horizontal); m > 0 && size+delta >= m {
				delta = max(m-size, 0)
				done[i] = true
				weight -= it.grow
			}
			if delta > 0 {
				t.resizeAxis(id, horizontal, size+delta)
				remaining -= delta
			}
		}
	}
	return amount - remaining
}

// shrink removes amount from the items of a line. Each item gives up space
// in proportion to its shrink factor times its basis size and never drops
// below its min size. It returns the amount actually removed.
func (l *layouter) shrink(items []ID, amount float64) float64 {
	t := l.tree
	horizontal := l.c.horizontal

	done := l.scratch(len(items))
	basis := l.basisScratch(len(items))
	var weight float64
	for i, id := range items {
		size := t.axisSize(id, horizontal)
		basis[i] = t.slot(id).item.Shrink() * size
		if basis[i] <= 0 || size <= t.axisMinSize(id, horizontal) {
			done[i] = true
			continue
		}
		weight += basis[i]
	}

	remaining := amount
	for round := 0; round <= len(items) && remaining > epsilon && weight > 0; round++ {
		perWeight := remaining / weight
		for i, id := range items {
			if done[i] {
				continue
			}
			size := t.axisSize(id, horizontal)
			delta := basis[i] * perWeight
			if floor := t.axisMinSize(id, horizontal); size-delta <= floor {
				delta = max(size-floor, 0)
				done[i] = true
				weight -= basis[i]
			}
			if delta > 0 {
				t.resizeAxis(id, horizontal, size-delta)
				remaining -= delta
			}
		}
	}
	return amount - remaining
}

func (l *layouter) scratch(n int) []bool {
	if cap(l.doneBuf) < n {
		l.doneBuf = make([]bool, n)
	}
	l.doneBuf = l.doneBuf[:n]
	clear(l.doneBuf)
	return l.doneBuf
}

func (l *layouter) basisScratch(n int) []float64 {
	if cap(l.basisBuf) < n {
		l.basisBuf = make([]float64, n)
	}
	l.basisBuf = l.basisBuf[:n]
	return l.basisBuf
}
