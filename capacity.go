package qrcode

// ecCodewordsPerBlock and ecBlocks are indexed [level][version], with index
// 0 of each row a sentinel (-1): level order is Low, Medium, Quartile, High.
var ecCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

var ecBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

func levelIndex(level RecoveryLevel) (int, error) {
	switch level {
	case Low, Medium, Quartile, High:
		return int(level), nil
	default:
		return 0, &InvalidECLevelError{Level: level}
	}
}

// totalModules returns the count of data-eligible modules for version: the
// symbol area minus finders, separators, timing, alignment, format, and
// (for version >= 7) version-information patterns.
func totalModules(version int) int {
	if version == 1 {
		return 21*21 - 3*8*8 - 2*15 - 1 - 2*5
	}

	alignBlocks := version/7 + 2
	size := version*4 + 17

	modules := size*size - 3*8*8 - (alignBlocks*alignBlocks-3)*5*5 - 2*(version*4+1) +
		(alignBlocks-2)*5*2 - 2*15 - 1

	if version > 6 {
		modules -= 2 * 3 * 6
	}

	return modules
}

func totalCodewords(version int, level RecoveryLevel) (int, error) {
	li, err := levelIndex(level)
	if err != nil {
		return 0, err
	}

	return totalModules(version)>>3 - ecBlocks[li][version]*ecCodewordsPerBlock[li][version], nil
}

// capacity returns the number of mode-native characters version can hold
// at level for mode.
func capacity(version int, level RecoveryLevel, mode Mode) (int, error) {
	dataCodewords, err := totalCodewords(version, level)
	if err != nil {
		return 0, err
	}

	bitsPerChar, err := charCountBits(mode, version)
	if err != nil {
		return 0, err
	}

	availableBits := dataCodewords<<3 - bitsPerChar - 4

	switch mode {
	case ModeNumeric:
		r := availableBits % 10

		tail := 0
		if r > 6 {
			tail = 2
		} else if r > 3 {
			tail = 1
		}

		return (availableBits/10)*3 + tail, nil
	case ModeAlphanumeric:
		tail := 0
		if availableBits%11 > 5 {
			tail = 1
		}

		return (availableBits/11)*2 + tail, nil
	case ModeByte:
		return availableBits >> 3, nil
	case ModeKanji:
		return availableBits / 13, nil
	default:
		return 0, &UnsupportedCharacterError{Mode: mode}
	}
}

// selectVersion returns the smallest version admitting length characters
// of mode at or above minECC, opportunistically upgrading the ECC level
// within that version: for each version, it tries High down to minECC and
// accepts the first fit.
func selectVersion(mode Mode, length int, minECC RecoveryLevel) (int, RecoveryLevel, error) {
	for version := 1; version <= 40; version++ {
		for level := High; level >= minECC; level-- {
			c, err := capacity(version, level, mode)
			if err != nil {
				return 0, 0, err
			}

			if c >= length {
				return version, level, nil
			}
		}
	}

	return 0, 0, &InputTooLongError{Length: length, MinECC: minECC}
}
