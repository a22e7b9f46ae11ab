package app

import (
	"log"
	"time"
)

// runVision is the camera-facing loop. It reads frames at a rate gated by
// motion detection and feeds detected hands to the engine:
//
// 1. Start in idle mode (IdleFPS)
// 2. On motion, switch to active mode (ActiveFPS) and run hand detection
// 3. Submit each detected hand frame to the engine; the engine keeps only
//    the latest unconsumed frame
// 4. After IdleTimeout with no motion, drop back to idle mode
func (a *App) runVision(stopCh chan struct{}) {
	defer a.wg.Done()

	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				continue
			}

			motionDetected, _ := a.motion.Sample(frame)

			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > IdleTimeout {
				activeMode = false
				a.camera.SetFPS(IdleFPS)
				frameInterval = time.Second / time.Duration(IdleFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			if !activeMode || a.detector == nil {
				frame.Close()
				continue
			}

			hands, err := a.detector.Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.engine.SubmitFrame(hands)
		}
	}
}

// runRender ticks the engine at the render rate and pushes each smoothed
// transform to the registered sink.
func (a *App) runRender(stopCh chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(time.Second / RenderFPS)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			transform := a.engine.Tick(time.Now())

			a.mu.Lock()
			sink := a.onTransform
			a.mu.Unlock()

			if sink != nil {
				sink(transform)
			}
		}
	}
}
