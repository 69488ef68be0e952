package sflz4

import "crypto/rand"

func generateRandomData(size int) []byte {
	data := make([]byte, size)
	rand.Read(data)
	return data
}

func generateCompressibleData(size int) []byte {
	data := make([]byte, size)
	pattern := []byte("abcdefghijklmnopqrstuvwxyz0123456789")
	for i := 0; i < size; i += len(pattern) {
		n := copy(data[i:], pattern)
		if n < len(pattern) {
			break
		}
	}
	return data
}

// mustCompress compresses src with a worst-case-sized destination and fails
// the test on any error, returning the compressed slice.
func mustCompress(t interface{ Fatalf(string, ...any) }, src []byte) []byte {
	bound, err := CompressBlockBound(len(src))
	if err != nil {
		t.Fatalf("CompressBlockBound: %v", err)
	}
	dst := make([]byte, bound)
	n, err := CompressBlock(src, dst)
	if err != nil {
		t.Fatalf("CompressBlock: %v", err)
	}
	return dst[:n]
}
