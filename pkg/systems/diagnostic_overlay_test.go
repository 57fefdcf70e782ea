package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/facepilot/pkg/facetracking"
)

func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{
		0:     "0%",
		0.2:   "20%",
		0.125: "13%",
		0.994: "99%",
		1:     "100%",
	}
	for in, want := range cases {
		if got := FormatPercent(in); got != want {
			t.Errorf("FormatPercent(%v): expected %q, got %q", in, want, got)
		}
	}
}

// TestDiagnosticOverlayText 测试诊断面板文本
func TestDiagnosticOverlayText(t *testing.T) {
	tracker := facetracking.NewTracker()

	if _, ok, err := DiagnosticOverlayText(tracker); ok || err != nil {
		t.Fatalf("Overlay should be hidden when not tracking (ok=%v, err=%v)", ok, err)
	}

	tracker.OnFaceAdded(facetracking.FaceAnchor{BlendShapes: fullShapes(0.2, 0.5, 0, 1, 0.333, 0.07)})
	text, ok, err := DiagnosticOverlayText(tracker)
	if err != nil || !ok {
		t.Fatalf("Expected overlay, got ok=%v err=%v", ok, err)
	}

	want := "\n" +
		"eyeBlink_L = 20%\n" +
		"eyeBlink_R = 50%\n" +
		"eyeLookUp_L = 0%\n" +
		"eyeLookUp_R = 100%\n" +
		"eyeLookDown_L = 33%\n" +
		"eyeLookDown_R = 7%\n"
	if text != want {
		t.Errorf("Unexpected overlay text:\n%q\nwant:\n%q", text, want)
	}

	// 面板是只读的
	if tracker.BlendShapes()[facetracking.EyeBlinkLeft] != 0.2 {
		t.Error("Overlay must not mutate the snapshot")
	}

	tracker.OnFaceUpdated(facetracking.FaceAnchor{BlendShapes: facetracking.BlendShapes{}})
	if _, _, err := DiagnosticOverlayText(tracker); !errors.Is(err, facetracking.ErrBlendShapeMissing) {
		t.Errorf("Expected ErrBlendShapeMissing, got %v", err)
	}
}
