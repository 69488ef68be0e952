package sflz4

import (
	"bytes"
	"testing"
)

func TestUncompressBlockStructuralRejections(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
	}{
		{"token extension truncated", []byte{0xF0}},
		{"token extension truncated after continuation", []byte{0xF0, 0xFF, 0xFF}},
		{"final sequence carries an offset", []byte{0x10, 0x41, 0x01, 0x00}},
		{"zero offset", []byte{0x10, 0x41, 0x00, 0x00, 0x00}},
		{"offset exceeds bytes emitted so far", []byte{0x10, 0x41, 0xFF, 0xFF, 0x00}},
		{"literal length reads past end of source", []byte{0x50, 0x41, 0x42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 64)
			_, err := UncompressBlock(tt.src, dst)
			if err != ErrInvalidData {
				t.Fatalf("UncompressBlock(% X) err = %v, want ErrInvalidData", tt.src, err)
			}
		})
	}
}

func TestUncompressBlockSrcTooLong(t *testing.T) {
	src := make([]byte, maxDecodeSrcLen+1)
	_, err := UncompressBlock(src, nil)
	if err != ErrSrcTooLong {
		t.Fatalf("err = %v, want ErrSrcTooLong", err)
	}
}

func TestUncompressBlockDstTooShort(t *testing.T) {
	src := []byte{0xC0}
	src = append(src, bytes.Repeat([]byte("A"), 12)...)
	dst := make([]byte, 11)
	_, err := UncompressBlock(src, dst)
	if err != ErrDstTooShort {
		t.Fatalf("err = %v, want ErrDstTooShort", err)
	}
}

func TestUncompressBlockOverlapCopy(t *testing.T) {
	// offset=1, match_len=100: a hand-crafted block consisting of one
	// literal byte, a match that replicates it 100 times, and a trailing
	// zero-literal token (the terminal sequence must be literal-only).
	literal := byte('x')
	wantLen := 100
	ext := wantLen - 4 - 15 // additional length beyond the 15 the nibble already encodes
	block := []byte{0x1F, literal, 0x01, 0x00}
	for ext >= 0xFF {
		block = append(block, 0xFF)
		ext -= 0xFF
	}
	block = append(block, byte(ext), 0x00)

	dst := make([]byte, 1+wantLen)
	n, err := UncompressBlock(block, dst)
	if err != nil {
		t.Fatalf("UncompressBlock: %v", err)
	}
	want := append([]byte{literal}, bytes.Repeat([]byte{literal}, wantLen)...)
	if !bytes.Equal(dst[:n], want) {
		t.Fatalf("overlap copy produced %q, want %q", dst[:n], want)
	}
}

func TestUncompressBlockOverlapCopyViaEncoder(t *testing.T) {
	src := bytes.Repeat([]byte{'z'}, 100)
	enc := mustCompress(t, src)
	dst := make([]byte, len(src))
	n, err := UncompressBlock(enc, dst)
	if err != nil {
		t.Fatalf("UncompressBlock: %v", err)
	}
	if !bytes.Equal(dst[:n], src) {
		t.Fatalf("round-trip of repeated-byte string mismatched")
	}
}
