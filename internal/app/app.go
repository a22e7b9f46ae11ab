// Package app wires the camera, hand detector, and fusion engine into the
// running Mudra application.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate while hands are moving.
	ActiveFPS = 20
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
	// RenderFPS drives the engine tick and transform broadcast.
	RenderFPS = 30
)

// Config holds configuration options for the application.
type Config struct {
	Engine       *engine.Engine
	Store        *store.Store
	CameraID     int
	MotionThresh float64
}

// App owns the two loops of the system: the vision loop that turns camera
// frames into hand frames for the engine, and the render loop that ticks the
// engine and publishes the smoothed transform.
type App struct {
	config   Config
	engine   *engine.Engine
	camera   capture.Camera
	motion   *capture.MotionGate
	detector detector.Detector

	mu          sync.Mutex
	stopCh      chan struct{}
	wg          sync.WaitGroup
	onTransform func(engine.RenderedTransform)
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	eng := config.Engine
	if eng == nil {
		eng = engine.New()
	}

	a := &App{
		config: config,
		engine: eng,
		camera: capture.NewCamera(config.CameraID),
		motion: capture.NewMotionGate(motionThreshold),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// Engine returns the fusion engine.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// SetCamera replaces the camera. Must be called before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetDetector replaces the hand detector. Must be called before Start.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// OnTransform registers the sink that receives the rendered transform once
// per tick, e.g. the WebSocket hub.
func (a *App) OnTransform(fn func(engine.RenderedTransform)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onTransform = fn
}

// Start opens the camera and launches the vision and render loops. A failed
// camera open is not fatal: hand frames can still arrive over the WebSocket
// ingest, so only the vision loop is skipped.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}
	a.stopCh = make(chan struct{})

	if err := a.camera.Open(); err != nil {
		log.Printf("Camera unavailable (%v), vision loop disabled", err)
	} else {
		a.camera.SetFPS(IdleFPS)
		a.wg.Add(1)
		go a.runVision(a.stopCh)
	}

	a.wg.Add(1)
	go a.runRender(a.stopCh)

	log.Println("Pipeline started")
	return nil
}

// Stop halts both loops and releases camera and detector resources.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}
	close(a.stopCh)
	a.stopCh = nil
	a.mu.Unlock()

	a.wg.Wait()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pipeline stopped")
}
