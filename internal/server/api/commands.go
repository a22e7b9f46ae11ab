package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/voice"
)

// CommandHandler ingests voice commands from the speech backend and applies
// them to the engine. The channel is best-effort: any well-formed JSON body
// is accepted, including actions the engine will ignore.
type CommandHandler struct {
	engine *engine.Engine
	store  *store.Store
}

// NewCommandHandler creates a CommandHandler. store may be nil, in which
// case commands are not logged.
func NewCommandHandler(e *engine.Engine, s *store.Store) *CommandHandler {
	return &CommandHandler{engine: e, store: s}
}

// ServeHTTP handles POST /api/command.
func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var cmd voice.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid command body")
		return
	}
	if cmd.Action == "" {
		writeError(w, http.StatusBadRequest, "Missing action")
		return
	}

	now := time.Now()
	h.engine.SubmitCommand(cmd, now)

	if h.store != nil {
		if err := h.store.CommandLog().Insert(cmd.Action, cmd.Value, now); err != nil {
			log.Printf("Failed to log command: %v", err)
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
