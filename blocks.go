package qrcode

import (
	"github.com/go-qrcode/qrcode/internal/bitset"
	"github.com/go-qrcode/qrcode/internal/reedsolomon"
)

// splitAndInterleave partitions the packed data codewords into blocks,
// appends each block's Reed-Solomon EC bytes, and interleaves the
// result into the final codeword stream. The interleave treats every
// block as if it were short_len+1 bytes long, skipping a sentinel slot
// for the genuinely short blocks so all reads line up.
func splitAndInterleave(data *bitset.Bitset, version int, level RecoveryLevel) ([]byte, error) {
	li, err := levelIndex(level)
	if err != nil {
		return nil, err
	}

	numBlocks := ecBlocks[li][version]
	ecPerBlock := ecCodewordsPerBlock[li][version]

	total := totalModules(version) >> 3
	shortLen := total / numBlocks
	shortCount := numBlocks - total%numBlocks

	blocks := make([][]byte, numBlocks)

	offset := 0

	for i := 0; i < numBlocks; i++ {
		dataLen := shortLen - ecPerBlock
		if i >= shortCount {
			dataLen++
		}

		raw, err := data.Substr(offset*8, (offset+dataLen)*8)
		if err != nil {
			return nil, err
		}

		offset += dataLen

		encoded, err := reedsolomon.Encode(raw, ecPerBlock)
		if err != nil {
			return nil, err
		}

		block := make([]byte, 0, shortLen+1)

		for j := 0; j < dataLen; j++ {
			by, err := encoded.ByteAt(j * 8)
			if err != nil {
				return nil, err
			}

			block = append(block, by)
		}

		if i < shortCount {
			// Sentinel slot: short blocks are one byte shorter than long
			// blocks before their EC tail, so their column here is skipped
			// during interleave rather than holding real data.
			block = append(block, 0)
		}

		for j := dataLen; j < dataLen+ecPerBlock; j++ {
			by, err := encoded.ByteAt(j * 8)
			if err != nil {
				return nil, err
			}

			block = append(block, by)
		}

		blocks[i] = block
	}

	sentinelColumn := shortLen - ecPerBlock

	result := make([]byte, 0, total)

	for col := 0; col <= shortLen; col++ {
		for j, block := range blocks {
			if col == sentinelColumn && j < shortCount {
				continue
			}

			result = append(result, block[col])
		}
	}

	return result, nil
}
