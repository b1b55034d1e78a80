package board

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	boarddao "github.com/ferryhill/kanbord/internal/dao/board"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Handler exposes the board RPCs over HTTP. The move endpoint mirrors the
// stored-procedure contract: HTTP 200 either way, callers branch on the
// success flag in the body.
type Handler struct {
	Mover  boarddao.TaskMover
	Stats  boarddao.StatsRefresher
	Boards boarddao.BoardReader
}

// MoveRequest is the body of POST /v1/tasks/{taskID}/move.
type MoveRequest struct {
	ColumnID   string `json:"column_id"`
	SortOrder  int    `json:"sort_order"`
	ActorEmail string `json:"actor_email,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type refreshResponse struct {
	Status string `json:"status"`
}

type boardTask struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	SortOrder int        `json:"sort_order"`
	Overdue   bool       `json:"overdue"`
}

type boardColumn struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Position int         `json:"position"`
	Tasks    []boardTask `json:"tasks"`
}

// Routes builds the chi router for the board API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/v1/tasks/{taskID}/move", h.moveTask)
	r.Post("/v1/stats/refresh", h.refreshStats)
	r.Get("/v1/stats", h.listStats)
	r.Get("/v1/projects/{projectID}/board", h.getBoard)
	return r
}

func (h *Handler) moveTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if _, err := uuid.Parse(taskID); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid task id"})
		return
	}
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if _, err := uuid.Parse(req.ColumnID); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid column id"})
		return
	}
	res := h.Mover.MoveTaskSafe(r.Context(), taskID, req.ColumnID, req.SortOrder, req.ActorEmail)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) refreshStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.Stats.RefreshProjectStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{Status: out.String()})
}

func (h *Handler) listStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.ListProjectStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if stats == nil {
		stats = []pgdao.ProjectStats{}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if _, err := uuid.Parse(projectID); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid project id"})
		return
	}
	cols, err := h.Boards.GetBoard(r.Context(), projectID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	now := time.Now()
	out := make([]boardColumn, 0, len(cols))
	for _, c := range cols {
		bc := boardColumn{ID: c.ID, Name: c.Name, Position: c.Position, Tasks: []boardTask{}}
		for _, t := range c.Tasks {
			bt := boardTask{
				ID:        t.ID,
				Title:     t.Title,
				Priority:  t.Priority,
				SortOrder: t.SortOrder,
				Overdue:   pgdao.IsOverdue(t.DueDate, t.Status, now),
			}
			if t.DueDate.Valid {
				d := t.DueDate.Time
				bt.DueDate = &d
			}
			bc.Tasks = append(bc.Tasks, bt)
		}
		out = append(out, bc)
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestID tags each request with a ULID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
