package flex

// Spacing returns the gap before the first of count entries and the gap
// between consecutive entries when free space is distributed with mode.
// Negative free space (overflow) is distributed the same way, so entries may
// end up outside the box. Stretch distributes like FlexStart; the extra space
// is added to the entries instead.
func Spacing(mode SpacingMode, count int, free float64) (before, between float64) {
	if count <= 0 {
		return 0, 0
	}
	n := float64(count)
	switch mode {
	case FlexEnd:
		return free, 0
	case Center:
		return free / 2, 0
	case SpaceBetween:
		if count > 1 {
			return 0, free / (n - 1)
		}
		return 0, 0
	case SpaceAround:
		return free / n / 2, free / n
	case SpaceEvenly:
		return free / (n + 1), free / (n + 1)
	default:
		return 0, 0
	}
}
