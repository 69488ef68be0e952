// Package sflz4 implements the LZ4 block compression format: a single-pass
// fast encoder and a bounds-checked decoder over flat byte buffers.
//
// This is the LZ4 "block" format, not the LZ4 frame format: there is no
// magic number, no frame header, no checksum and no support for
// concatenated or dictionary-primed blocks. Callers that need those
// features should wrap this package with their own framing layer.
//
// Every operation is a pure function of its input buffers. There is no
// allocation, no I/O and no shared state between calls: CompressBlock
// keeps its hash table on the stack for the duration of one call, and
// UncompressBlock uses only local variables. Any number of calls may run
// concurrently as long as they operate on disjoint buffers.
//
//	bound, err := sflz4.CompressBlockBound(len(src))
//	dst := make([]byte, bound)
//	n, err := sflz4.CompressBlock(src, dst)
//	...
//	out := make([]byte, decodedLen)
//	n, err = sflz4.UncompressBlock(dst[:n], out)
package sflz4
