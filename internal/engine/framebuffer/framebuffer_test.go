package framebuffer

import "testing"

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int32
		wantW, wantH int32
	}{
		{800, 600, 800, 600},
		{0, 600, 1, 600},
		{-5, 0, 1, 1},
	}
	for _, tt := range tests {
		w, h := clampSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("clampSize(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestBottomUpToImage(t *testing.T) {
	// 1x2 image: GL row 0 is the bottom row
	pixels := []byte{
		1, 2, 3, 4, // bottom
		5, 6, 7, 8, // top
	}
	img := bottomUpToImage(pixels, 1, 2)

	if top := img.RGBAAt(0, 0); top.R != 5 || top.A != 8 {
		t.Errorf("top pixel = %v, want {5 6 7 8}", top)
	}
	if bottom := img.RGBAAt(0, 1); bottom.R != 1 || bottom.A != 4 {
		t.Errorf("bottom pixel = %v, want {1 2 3 4}", bottom)
	}
}
