package qrcode

// newGrid allocates a size x size module grid (all light) and its
// parallel reservation mask (all free).
func newGrid(size int) (modules, reserved [][]bool) {
	modules = make([][]bool, size)
	reserved = make([][]bool, size)

	for y := range modules {
		modules[y] = make([]bool, size)
		reserved[y] = make([]bool, size)
	}

	return modules, reserved
}

// setFunc marks (x,y) as a function-pattern cell with the given value.
// Function cells are reserved: data placement and masking skip them.
func setFunc(modules, reserved [][]bool, x, y int, dark bool) {
	modules[y][x] = dark
	reserved[y][x] = true
}

func inBounds(size, x, y int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

func placeTimingPatterns(modules, reserved [][]bool, size int) {
	for i := 0; i < size; i++ {
		setFunc(modules, reserved, i, 6, i%2 == 0)
		setFunc(modules, reserved, 6, i, i%2 == 0)
	}
}

// placeFinder draws a 7x7 finder plus its 1-module light separator centered
// at (x,y), using Chebyshev distance: dark everywhere except the ring at
// distance 2 and 4.
func placeFinder(modules, reserved [][]bool, size, x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			distance := chebyshev(dx, dy)
			bx, by := x+dx, y+dy

			if inBounds(size, bx, by) {
				setFunc(modules, reserved, bx, by, distance != 2 && distance != 4)
			}
		}
	}
}

func placeAlignmentMark(modules, reserved [][]bool, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			setFunc(modules, reserved, x+dx, y+dy, chebyshev(dx, dy) != 1)
		}
	}
}

func chebyshev(dx, dy int) int {
	a, b := abs(dx), abs(dy)
	if a > b {
		return a
	}

	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// alignmentTrack returns the alignment-pattern position set: {6} plus, for
// version >= 2, an arithmetic progression of `intervals` further tracks.
func alignmentTrack(version int) []int {
	if version == 1 {
		return nil
	}

	intervals := version/7 + 1
	distance := 4*version + 4
	step := 2 * ((distance + 2*intervals - 1) / (2 * intervals))

	track := []int{6}

	for i := 0; i < intervals; i++ {
		track = append(track, distance+6-(intervals-1-i)*step)
	}

	return track
}

func placeAlignmentPatterns(modules, reserved [][]bool, size, version int) {
	track := alignmentTrack(version)
	if track == nil {
		return
	}

	n := len(track)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if (i == 0 && j == 0) || (i == 0 && j == n-1) || (i == n-1 && j == 0) {
				continue
			}

			placeAlignmentMark(modules, reserved, track[i], track[j])
		}
	}
}

// placeFormat writes the 15-bit BCH-protected format field (ECC level and
// mask), duplicated per the QR layout, plus the single dark module.
func placeFormat(modules, reserved [][]bool, size int, level RecoveryLevel, mask int) error {
	formatBits, err := level.formatBits()
	if err != nil {
		return err
	}

	data := formatBits<<3 | mask

	remainder := data
	for i := 0; i < 10; i++ {
		remainder = (remainder << 1) ^ ((remainder >> 9) * 0x537)
	}

	bits := (data<<10 | remainder) ^ 0x5412

	for i := 0; i <= 8; i++ {
		switch {
		case i <= 5:
			setFunc(modules, reserved, 8, i, (bits>>i)&1 != 0)
		case i == 6:
			continue
		default:
			setFunc(modules, reserved, 8, i, (bits>>(i-1))&1 != 0)
		}
	}

	setFunc(modules, reserved, 7, 8, (bits>>8)&1 != 0)

	for i := 9; i < 15; i++ {
		setFunc(modules, reserved, 14-i, 8, (bits>>i)&1 != 0)
	}

	for i := 0; i < 8; i++ {
		setFunc(modules, reserved, size-1-i, 8, (bits>>i)&1 != 0)
	}

	for i := 8; i < 15; i++ {
		setFunc(modules, reserved, 8, size-15+i, (bits>>i)&1 != 0)
	}

	setFunc(modules, reserved, 8, size-8, true)

	return nil
}

// placeVersionInfo writes the 18-bit field encoding the version number
// (versions 7 and above only), duplicated in a 6x3 and a 3x6 block.
func placeVersionInfo(modules, reserved [][]bool, size, version int) {
	if version < 7 {
		return
	}

	remainder := version
	for i := 0; i < 12; i++ {
		remainder = (remainder << 1) ^ ((remainder >> 11) * 0x1F25)
	}

	bits := version<<12 | remainder

	for i := 0; i < 18; i++ {
		dark := (bits>>i)&1 != 0
		setFunc(modules, reserved, size-11+i%3, i/3, dark)
		setFunc(modules, reserved, i/3, size-11+i%3, dark)
	}
}

func placeFunctionPatterns(modules, reserved [][]bool, size, version int, level RecoveryLevel, mask int) error {
	placeTimingPatterns(modules, reserved, size)

	placeFinder(modules, reserved, size, 3, 3)
	placeFinder(modules, reserved, size, size-4, 3)
	placeFinder(modules, reserved, size, 3, size-4)

	placeAlignmentPatterns(modules, reserved, size, version)

	if err := placeFormat(modules, reserved, size, level, mask); err != nil {
		return err
	}

	placeVersionInfo(modules, reserved, size, version)

	return nil
}

// placeCodewords streams data, big-endian within each byte, into the
// non-reserved cells in the canonical zig-zag order: two columns at a time
// from the right edge, alternating scan direction, skipping the timing
// column.
func placeCodewords(modules, reserved [][]bool, size int, data []byte) {
	bitIndex := 0
	totalBits := len(data) * 8

	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}

		for v := 0; v < size; v++ {
			up := (right+1)&2 == 0

			y := v
			if up {
				y = size - 1 - v
			}

			for j := 0; j < 2; j++ {
				x := right - j

				if reserved[y][x] || bitIndex >= totalBits {
					continue
				}

				bit := (data[bitIndex>>3] >> (7 - uint(bitIndex&7))) & 1
				modules[y][x] = bit != 0
				bitIndex++
			}
		}
	}
}

// maskFuncs holds the 8 standard data-mask predicates, returning true
// where the mask flips the module.
var maskFuncs = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (x/3+y/2)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// applyMask XORs every non-reserved cell with maskFuncs[mask]. mask must
// be in [0,7]: unlike the clamp-to-0 policy at the constructor boundary,
// this routine rejects an out-of-range index directly, since a caller
// reaching it without going through Options has a programming error to
// fix rather than a value worth silently coercing.
func applyMask(modules, reserved [][]bool, size, mask int) error {
	if mask < 0 || mask > 7 {
		return &InvalidMaskError{Mask: mask}
	}

	fn := maskFuncs[mask]

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !reserved[y][x] && fn(x, y) {
				modules[y][x] = !modules[y][x]
			}
		}
	}

	return nil
}

func cloneGrid(grid [][]bool) [][]bool {
	out := make([][]bool, len(grid))

	for i, row := range grid {
		out[i] = append([]bool(nil), row...)
	}

	return out
}

// penalty scores a finished matrix per the four standard QR penalty rules,
// lower is better. Only used by the opt-in AutoMask extension.
func penalty(modules [][]bool, size int) int {
	score := 0

	// Rule 1: runs of 5+ same-color modules in a row or column.
	for y := 0; y < size; y++ {
		score += runPenalty(func(i int) bool { return modules[y][i] }, size)
	}

	for x := 0; x < size; x++ {
		score += runPenalty(func(i int) bool { return modules[i][x] }, size)
	}

	// Rule 2: 2x2 blocks of the same color.
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			v := modules[y][x]
			if v == modules[y][x+1] && v == modules[y+1][x] && v == modules[y+1][x+1] {
				score += 3
			}
		}
	}

	// Rule 3: finder-like patterns (1:1:3:1:1 light-dark ratio with 4 light
	// quiet modules on one side).
	pattern := []bool{true, false, true, true, true, false, true, false, false, false, false}

	for y := 0; y < size; y++ {
		for x := 0; x+len(pattern) <= size; x++ {
			if rowMatches(modules[y], x, pattern) {
				score += 40
			}
		}
	}

	for x := 0; x < size; x++ {
		col := make([]bool, size)
		for y := 0; y < size; y++ {
			col[y] = modules[y][x]
		}

		for y := 0; y+len(pattern) <= size; y++ {
			if rowMatches(col, y, pattern) {
				score += 40
			}
		}
	}

	// Rule 4: overall dark/light balance, penalised the further from 50%.
	dark := 0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if modules[y][x] {
				dark++
			}
		}
	}

	percent := dark * 100 / (size * size)
	deviation := abs(percent - 50)
	score += (deviation / 5) * 10

	return score
}

func rowMatches(row []bool, start int, pattern []bool) bool {
	for i, want := range pattern {
		if row[start+i] != want {
			return false
		}
	}

	return true
}

func runPenalty(at func(int) bool, size int) int {
	score := 0
	runLen := 1

	for i := 1; i < size; i++ {
		if at(i) == at(i-1) {
			runLen++
			continue
		}

		if runLen >= 5 {
			score += 3 + (runLen - 5)
		}

		runLen = 1
	}

	if runLen >= 5 {
		score += 3 + (runLen - 5)
	}

	return score
}

// buildMatrix places function patterns and data, then applies a mask: the
// caller's choice unless autoMask is set, in which case all 8 masks are
// tried and the lowest-penalty one kept.
func buildMatrix(version int, level RecoveryLevel, mask int, autoMask bool, data []byte) ([][]bool, int, error) {
	size := version*4 + 17

	baseModules, baseReserved := newGrid(size)

	if err := placeFunctionPatterns(baseModules, baseReserved, size, version, level, mask); err != nil {
		return nil, 0, err
	}

	placeCodewords(baseModules, baseReserved, size, data)

	if !autoMask {
		modules := cloneGrid(baseModules)

		if err := applyMask(modules, baseReserved, size, mask); err != nil {
			return nil, 0, err
		}

		return modules, mask, nil
	}

	var best [][]bool

	bestMask := 0
	bestPenalty := 0

	for m := 0; m < 8; m++ {
		// The format field is bound to the mask index, so it must be
		// redrawn per candidate before scoring.
		modules := cloneGrid(baseModules)
		reserved := cloneGrid(baseReserved)

		if err := placeFormat(modules, reserved, size, level, m); err != nil {
			return nil, 0, err
		}

		if err := applyMask(modules, reserved, size, m); err != nil {
			return nil, 0, err
		}

		p := penalty(modules, size)

		if best == nil || p < bestPenalty {
			best = modules
			bestMask = m
			bestPenalty = p
		}
	}

	return best, bestMask, nil
}
