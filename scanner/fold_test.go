package scanner

import "testing"

func TestFoldWordMatchesFoldByte(t *testing.T) {
	var buf [8]byte
	for b := 0; b < 256; b++ {
		for lane := 0; lane < 8; lane++ {
			buf[lane] = byte(b)
		}
		w := le64(buf[:])
		folded := foldWord(w)
		var out [8]byte
		putLe64(out[:], folded)
		want := foldByte(byte(b))
		for lane := 0; lane < 8; lane++ {
			if out[lane] != want {
				t.Fatalf("foldWord(%#02x) lane %d = %#02x, want %#02x", b, lane, out[lane], want)
			}
		}
	}
}

func TestFoldBlockMixedBytes(t *testing.T) {
	in := []byte("Hello, World! 123 #ABC-xyz")
	want := make([]byte, len(in))
	for i, b := range in {
		want[i] = foldByte(b)
	}
	foldBlock(in)
	if string(in) != string(want) {
		t.Fatalf("foldBlock = %q, want %q", in, want)
	}
}

func TestFoldBlockOddLength(t *testing.T) {
	for n := 0; n < 20; n++ {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte('A' + i%26)
		}
		want := make([]byte, n)
		for i, b := range in {
			want[i] = foldByte(b)
		}
		foldBlock(in)
		if string(in) != string(want) {
			t.Fatalf("len %d: foldBlock = %q, want %q", n, in, want)
		}
	}
}
