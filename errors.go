package sflz4

import "errors"

// Sentinel errors returned by this package's three operations. Each is
// independently distinguishable with errors.Is; none of them carry extra
// state, so comparing with == also works.
var (
	// ErrSrcTooLong is returned when the source buffer exceeds this
	// implementation's per-operation length ceiling (see
	// maxEncodeSrcLen and maxDecodeSrcLen). It is raised before any
	// work is done and never reflects a property of the data itself.
	ErrSrcTooLong = errors.New("sflz4: source is too long")

	// ErrDstTooShort is returned when the destination buffer cannot
	// hold the output. For CompressBlock this is judged against the
	// worst-case bound, not the actual compressed size.
	ErrDstTooShort = errors.New("sflz4: destination buffer is too short")

	// ErrInvalidData is returned by UncompressBlock on any structural
	// violation of the LZ4 block format: a truncated token, a
	// truncated length extension, a truncated offset, a zero offset,
	// an offset referencing bytes not yet written, or a literal run
	// that would read past the end of the source.
	ErrInvalidData = errors.New("sflz4: invalid compressed data")
)
