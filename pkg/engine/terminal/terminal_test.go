package terminal

import "testing"

func TestMazeSize(t *testing.T) {
	tests := []struct {
		cols, rows, reserved int
		wantW, wantD         int
	}{
		{80, 24, 7, 39, 8},
		{81, 25, 0, 40, 12},
		{2, 2, 10, 1, 1},
	}
	for _, tt := range tests {
		w, d := MazeSize(tt.cols, tt.rows, tt.reserved)
		if w != tt.wantW || d != tt.wantD {
			t.Errorf("MazeSize(%d, %d, %d) = %dx%d, want %dx%d", tt.cols, tt.rows, tt.reserved, w, d, tt.wantW, tt.wantD)
		}
	}
}
