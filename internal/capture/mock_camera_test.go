package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func TestMockCamera_Playback(t *testing.T) {
	a := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC1)
	defer a.Close()
	b := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC1)
	defer b.Close()

	cam := NewMockCamera([]*gocv.Mat{&a, &b}, false)

	t.Run("read before open fails", func(t *testing.T) {
		if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
			t.Errorf("expected ErrCameraNotOpen, got %v", err)
		}
	})

	t.Run("serves frames in order then runs out", func(t *testing.T) {
		if err := cam.Open(); err != nil {
			t.Fatalf("open failed: %v", err)
		}
		defer cam.Close()

		for i := 0; i < 2; i++ {
			frame, err := cam.ReadFrame()
			if err != nil {
				t.Fatalf("frame %d: %v", i, err)
			}
			frame.Close()
		}

		if _, err := cam.ReadFrame(); err == nil {
			t.Error("expected error after sequence exhausted")
		}
	})
}

func TestMockCamera_Loop(t *testing.T) {
	a := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC1)
	defer a.Close()

	cam := NewMockCamera([]*gocv.Mat{&a}, true)
	if err := cam.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer cam.Close()

	for i := 0; i < 5; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("loop read %d failed: %v", i, err)
		}
		frame.Close()
	}
}

func TestMockCamera_FPS(t *testing.T) {
	cam := NewMockCamera(nil, false)

	cam.SetFPS(20)
	if got := cam.FPS(); got != 20 {
		t.Errorf("expected fps 20, got %d", got)
	}

	// Non-positive rates ignored
	cam.SetFPS(0)
	if got := cam.FPS(); got != 20 {
		t.Errorf("expected fps unchanged, got %d", got)
	}
}
