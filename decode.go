package sflz4

// UncompressBlock decodes the LZ4 block src into dst, returning the
// number of bytes written. dst must not alias src.
//
// It fails with ErrSrcTooLong if len(src) exceeds maxDecodeSrcLen, with
// ErrInvalidData on any structural violation of the block format, and
// with ErrDstTooShort if dst is not large enough to hold the
// decompressed output.
func UncompressBlock(src, dst []byte) (int, error) {
	if len(src) > maxDecodeSrcLen {
		return 0, ErrSrcTooLong
	}

	if len(src) == 0 {
		// A block holds at least one token; an empty source has none.
		return 0, ErrInvalidData
	}

	var sp, dp int

	for sp < len(src) {
		token := src[sp]
		sp++

		literalLen := int(token >> 4)
		if literalLen == 15 {
			for {
				if sp >= len(src) {
					return 0, ErrInvalidData
				}
				b := src[sp]
				sp++
				literalLen += int(b)
				if b != 0xFF {
					break
				}
			}
		}

		if literalLen > len(src)-sp {
			return 0, ErrInvalidData
		}
		if literalLen > len(dst)-dp {
			return 0, ErrDstTooShort
		}
		copy(dst[dp:dp+literalLen], src[sp:sp+literalLen])
		sp += literalLen
		dp += literalLen

		if sp == len(src) {
			// A sequence whose literal run consumes the rest of the
			// input is the only legal block terminator.
			return dp, nil
		}

		if len(src)-sp < 2 {
			return 0, ErrInvalidData
		}
		offset := int(src[sp]) | int(src[sp+1])<<8
		sp += 2
		if offset == 0 || offset > dp {
			return 0, ErrInvalidData
		}

		matchLen := int(token&0x0F) + 4
		if matchLen == 19 {
			for {
				if sp >= len(src) {
					return 0, ErrInvalidData
				}
				b := src[sp]
				sp++
				matchLen += int(b)
				if b != 0xFF {
					break
				}
			}
		}

		if matchLen > len(dst)-dp {
			return 0, ErrDstTooShort
		}
		// Overlapping copies (offset < matchLen) are intentional: this
		// is how LZ4 encodes run-length repeats, e.g. offset == 1
		// replicates the previous byte matchLen times. A bulk copy
		// that reads ahead of what it has already written would break
		// this, so the loop must proceed byte-by-byte in order.
		from := dp - offset
		for i := 0; i < matchLen; i++ {
			dst[dp+i] = dst[from+i]
		}
		dp += matchLen
	}

	// The only way out of the loop above is the literal-exhausts-source
	// return inside it; falling through here means the final sequence
	// was a match that happened to consume exactly to the end of src,
	// which is not a valid block terminator.
	return 0, ErrInvalidData
}
