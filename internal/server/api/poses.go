package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/store"
)

// PoseHandler handles HTTP requests for pose presets: snapshots of the
// engine's target state that can be re-applied later.
type PoseHandler struct {
	engine *engine.Engine
	store  *store.Store
}

// NewPoseHandler creates a new PoseHandler.
func NewPoseHandler(e *engine.Engine, s *store.Store) *PoseHandler {
	return &PoseHandler{engine: e, store: s}
}

// ServeHTTP routes pose requests.
// Expected paths: /api/poses, /api/poses/{id}, /api/poses/{id}/apply
func (h *PoseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/poses")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
		return
	}

	if id, ok := strings.CutSuffix(path, "/apply"); ok {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.apply(w, r, id)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, path)
	case http.MethodDelete:
		h.delete(w, r, path)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

type createPoseRequest struct {
	Name string `json:"name"`
}

type poseResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Position engine.Vec3 `json:"position"`
	Rotation engine.Vec3 `json:"rotation"`
	Scale    float64     `json:"scale"`
	Color    string      `json:"color,omitempty"`
}

type listPosesResponse struct {
	Poses []poseResponse `json:"poses"`
}

func toResponse(p *store.Pose) poseResponse {
	return poseResponse{
		ID:       p.ID,
		Name:     p.Name,
		Position: engine.Vec3{X: p.PosX, Y: p.PosY, Z: p.PosZ},
		Rotation: engine.Vec3{X: p.RotX, Y: p.RotY, Z: p.RotZ},
		Scale:    p.Scale,
		Color:    p.Color,
	}
}

// create handles POST /api/poses: snapshots the current target state under
// the given name.
func (h *PoseHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	target := h.engine.Target()
	pose := &store.Pose{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		PosX:  target.Position.X,
		PosY:  target.Position.Y,
		PosZ:  target.Position.Z,
		RotX:  target.Rotation.X,
		RotY:  target.Rotation.Y,
		RotZ:  target.Rotation.Z,
		Scale: target.Scale,
		Color: target.Color,
	}

	if err := h.store.Poses().Create(pose); err != nil {
		writeError(w, http.StatusConflict, "Failed to create pose")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(pose))
}

func (h *PoseHandler) list(w http.ResponseWriter, r *http.Request) {
	poses, err := h.store.Poses().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list poses")
		return
	}

	response := listPosesResponse{Poses: make([]poseResponse, 0, len(poses))}
	for _, p := range poses {
		response.Poses = append(response.Poses, toResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *PoseHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	pose, err := h.store.Poses().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Pose not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get pose")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(pose))
}

// apply handles POST /api/poses/{id}/apply: sets the engine's target state
// to the stored pose. The rendered transform approaches it smoothly.
func (h *PoseHandler) apply(w http.ResponseWriter, r *http.Request, id string) {
	pose, err := h.store.Poses().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Pose not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get pose")
		return
	}

	h.engine.SetPose(
		engine.Vec3{X: pose.PosX, Y: pose.PosY, Z: pose.PosZ},
		engine.Vec3{X: pose.RotX, Y: pose.RotY, Z: pose.RotZ},
		pose.Scale,
		pose.Color,
	)

	writeJSON(w, http.StatusOK, toResponse(pose))
}

func (h *PoseHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Poses().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Pose not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete pose")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
