package sflz4

// CompressBlock encodes src into dst as a single LZ4 block, returning the
// number of bytes written. dst must not alias src.
//
// The caller must size dst to at least CompressBlockBound(len(src));
// CompressBlock fails with ErrDstTooShort against that worst-case bound
// even when the actual compressed form would have fit in a smaller
// buffer, so the hot loop never has to re-check remaining space.
func CompressBlock(src, dst []byte) (int, error) {
	bound, err := CompressBlockBound(len(src))
	if err != nil {
		return 0, err
	}
	if len(dst) < bound {
		return 0, ErrDstTooShort
	}

	dp := 0
	literalStart := 0

	if len(src) > 12 {
		// The last match must start at least 12 bytes before the end
		// of the block, and must end at least 5 bytes before it.
		matchLimit := len(src) - 5
		finalLiteralsLimit := len(src) - 11

		// 4096-slot hash table, zero-initialized, living entirely on
		// the stack for the duration of this call. Slot 0 doubles as
		// "unset"; a spurious match against position 0 is rejected by
		// the byte-equality check below, so no separate sentinel bit
		// is needed.
		var hashTable [hashTableSize]uint32
		sp := 0

	search:
		for {
			step := 1
			stepCounter := 1 << 6

			// The search always begins with a non-empty literal: the
			// first probe is one byte past the current literal run.
			nextSp := sp + 1
			nextHash := blockHash(peekUint32LE(src[nextSp:]))

			var match int
			for {
				sp = nextSp
				nextSp += step
				step = stepCounter >> 6
				stepCounter++
				if nextSp > finalLiteralsLimit {
					break search
				}

				h := nextHash
				match = int(hashTable[h])
				nextHash = blockHash(peekUint32LE(src[nextSp:]))
				hashTable[h] = uint32(sp)

				if sp-match <= 0xFFFF && peekUint32LE(src[sp:]) == peekUint32LE(src[match:]) {
					break
				}
			}

			// Extend the match backward into the pending literal run.
			for sp > literalStart && match > 0 && src[sp-1] == src[match-1] {
				sp--
				match--
			}

			tokenPos := dp
			literalLen := sp - literalStart
			if literalLen < 15 {
				dst[dp] = byte(literalLen << 4)
				dp++
			} else {
				dst[dp] = 0xF0
				dp++
				n := literalLen - 15
				for ; n >= 0xFF; n -= 0xFF {
					dst[dp] = 0xFF
					dp++
				}
				dst[dp] = byte(n)
				dp++
			}
			dp += copy(dst[dp:dp+literalLen], src[literalStart:literalStart+literalLen])

			for {
				// sp is the start of the match's later copy, match is
				// the start of its earlier copy, tokenPos is the
				// token byte this sequence belongs to.
				offset := sp - match
				dst[dp] = byte(offset)
				dst[dp+1] = byte(offset >> 8)
				dp += 2

				adjMatchLen := longestCommonPrefix(src[sp+4:], src[match+4:], matchLimit-(sp+4))
				if adjMatchLen < 15 {
					dst[tokenPos] |= byte(adjMatchLen)
				} else {
					dst[tokenPos] |= 0x0F
					n := adjMatchLen - 15
					for ; n >= 0xFF; n -= 0xFF {
						dst[dp] = 0xFF
						dp++
					}
					dst[dp] = byte(n)
					dp++
				}
				sp += 4 + adjMatchLen
				literalStart = sp

				if sp >= finalLiteralsLimit {
					break search
				}

				// The match covered positions the hash table never
				// saw individually; backfill just one of them (a
				// deliberate, cheap approximation, not every skipped
				// position) so nearby matches stay discoverable.
				hashTable[blockHash(peekUint32LE(src[sp-2:]))] = uint32(sp - 2)

				// Check whether another match starts immediately,
				// with zero intervening literals.
				h := blockHash(peekUint32LE(src[sp:]))
				oldOffset := int(hashTable[h])
				hashTable[h] = uint32(sp)
				match = oldOffset
				if sp-oldOffset > 0xFFFF || peekUint32LE(src[sp:]) != peekUint32LE(src[match:]) {
					break
				}
				tokenPos = dp
				dst[dp] = 0
				dp++
			}
		}
	}

	finalLiteralLen := len(src) - literalStart
	if finalLiteralLen < 15 {
		dst[dp] = byte(finalLiteralLen << 4)
		dp++
	} else {
		dst[dp] = 0xF0
		dp++
		n := finalLiteralLen - 15
		for ; n >= 0xFF; n -= 0xFF {
			dst[dp] = 0xFF
			dp++
		}
		dst[dp] = byte(n)
		dp++
	}
	dp += copy(dst[dp:dp+finalLiteralLen], src[literalStart:])

	return dp, nil
}
