package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

type harness struct {
	store  *store.Store
	app    *app.App
	server *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	application := app.New(app.Config{Store: s, MotionThresh: 0.05})
	application.SetCamera(capture.NewMockCamera([]*gocv.Mat{}, false))
	application.SetDetector(detector.NewMockDetector())

	srv := server.New(server.Config{
		Engine: application.Engine(),
		Store:  s,
	})
	application.OnTransform(srv.Transform().Broadcast)

	if err := application.Start(); err != nil {
		t.Fatalf("app.Start() error = %v", err)
	}
	t.Cleanup(application.Stop)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return &harness{store: s, app: application, server: ts}
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

func TestE2E_CommandToTransform(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	h := newHarness(t)
	client := h.server.Client()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(h.server, "/api/transform"), nil)
	if err != nil {
		t.Fatalf("dial transform feed: %v", err)
	}
	defer conn.Close()

	resp, err := client.Post(
		h.server.URL+"/api/command",
		"application/json",
		strings.NewReader(`{"action": "scale", "value": "make it bigger"}`),
	)
	if err != nil {
		t.Fatalf("post command error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusAccepted)
	}

	// The broadcast transform should converge toward the new target scale.
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var msg struct {
			Transform engine.RenderedTransform `json:"transform"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("transform feed ended before scale converged: %v", err)
		}
		if msg.Transform.Scale > 1.4 {
			return
		}
	}
}

func TestE2E_HandsIngestMovesTarget(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	h := newHarness(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(h.server, "/api/hands"), nil)
	if err != nil {
		t.Fatalf("dial hands ingest: %v", err)
	}
	defer conn.Close()

	// A pinch frame should translate the target. The pinch anchor sits below
	// center, so the target Y goes negative.
	frame := landmark.HandFrame{Hands: []landmark.HandSample{landmark.PinchHand()}}
	payload, _ := json.Marshal(frame)
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("send hand frame: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		target := h.app.Engine().Target()
		if target.Position.Y < -0.5 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Errorf("target never moved: %+v", h.app.Engine().Target().Position)
}

func TestE2E_PoseWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	h := newHarness(t)
	client := h.server.Client()
	eng := h.app.Engine()

	eng.SetPose(engine.Vec3{X: 1.2}, engine.Vec3{Y: 0.4}, 2.5, "violet")

	resp, err := client.Post(
		h.server.URL+"/api/poses",
		"application/json",
		strings.NewReader(`{"name": "saved"}`),
	)
	if err != nil {
		t.Fatalf("create pose error = %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create pose status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var created struct {
		ID string `json:"id"`
	}
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()
	if created.ID == "" {
		t.Fatal("expected pose id in create response")
	}

	// Recenter wipes the target; applying the pose must bring it back.
	resp, err = client.Post(
		h.server.URL+"/api/command",
		"application/json",
		strings.NewReader(`{"action": "recenter"}`),
	)
	if err != nil {
		t.Fatalf("recenter error = %v", err)
	}
	resp.Body.Close()

	if got := eng.Target().Scale; got != 1.0 {
		t.Fatalf("scale after recenter = %v, want 1.0", got)
	}

	resp, err = client.Post(h.server.URL+"/api/poses/"+created.ID+"/apply", "application/json", nil)
	if err != nil {
		t.Fatalf("apply pose error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("apply pose status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	target := eng.Target()
	if target.Position.X != 1.2 || target.Scale != 2.5 || target.Color != "violet" {
		t.Errorf("pose not restored: %+v", target)
	}

	// The recenter command should be in the history.
	records, err := h.store.CommandLog().Recent(10)
	if err != nil {
		t.Fatalf("command log error = %v", err)
	}
	if len(records) != 1 || records[0].Action != "recenter" {
		t.Errorf("unexpected command log: %+v", records)
	}
}
