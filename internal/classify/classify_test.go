package classify

import "testing"

func TestNickCodeLetters(t *testing.T) {
	if NickCode['a'] != 0 || NickCode['z'] != 25 {
		t.Fatalf("lowercase range: a=%d z=%d, want 0,25", NickCode['a'], NickCode['z'])
	}
	if NickCode['A'] != 26 || NickCode['Z'] != 51 {
		t.Fatalf("uppercase range: A=%d Z=%d, want 26,51", NickCode['A'], NickCode['Z'])
	}
	if NickCode['0'] != 52 || NickCode['9'] != 61 {
		t.Fatalf("digit range: 0=%d 9=%d, want 52,61", NickCode['0'], NickCode['9'])
	}
	if NickCode['-'] != 62 {
		t.Fatalf("NickCode['-'] = %d, want 62", NickCode['-'])
	}
}

func TestNickCodeReserved(t *testing.T) {
	for _, b := range []byte{'_', ' ', '!', '.', 0, 255} {
		if NickCode[b] != NickReserved {
			t.Errorf("NickCode[%q] = %d, want NickReserved(%d)", b, NickCode[b], NickReserved)
		}
	}
}
