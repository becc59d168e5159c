package blob

import (
	"bytes"
	"testing"
)

func TestChecksum(t *testing.T) {
	for _, tt := range []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0},
		{"one word", []byte{0x12, 0x34}, 0x1234},
		{"two words", []byte{0x12, 0x34, 0x00, 0x01}, 0x1235},
		{"wraps modulus", []byte{0xff, 0xff, 0xff, 0xff}, (0xffff + 0xffff) % 65521},
		{"trailing odd byte ignored", []byte{0x12, 0x34, 0xff}, 0x1234},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Checksum(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Checksum() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChecksumLongStream(t *testing.T) {
	// 65521 words of 0x0001 sum to 0 mod 65521.
	data := bytes.Repeat([]byte{0x00, 0x01}, 65521)
	got, err := Checksum(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Checksum() = %d, want 0", got)
	}
}
