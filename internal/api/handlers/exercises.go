package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitlog/exercise-tracker/internal/api/httpx"
	"github.com/fitlog/exercise-tracker/internal/api/validate"
	"github.com/fitlog/exercise-tracker/internal/services"
)

type ExerciseHandler struct {
	svc *services.ExerciseService
}

func NewExerciseHandler(svc *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{svc: svc}
}

// exerciseResponse echoes the owning user's id, matching the log entry a
// client will later read back for that user.
type exerciseResponse struct {
	ID          primitive.ObjectID `json:"_id"`
	Username    string             `json:"username"`
	Date        string             `json:"date"`
	Duration    int                `json:"duration"`
	Description string             `json:"description"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	Username string             `json:"username"`
	ID       primitive.ObjectID `json:"_id"`
	Count    int64              `json:"count"`
	Log      []logEntry         `json:"log"`
}

func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "unable to parse form body", nil)
		return
	}

	var errs validate.Errs
	description := r.PostFormValue("description")
	if ef := validate.Required("description", description); ef != nil {
		errs = append(errs, *ef)
	}
	duration, ef := validate.PositiveInt("duration", r.PostFormValue("duration"))
	if ef != nil {
		errs = append(errs, *ef)
	}
	date, ef := validate.Date("date", r.PostFormValue("date"))
	if ef != nil {
		errs = append(errs, *ef)
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "invalid request", errs)
		return
	}

	ex, err := h.svc.Create(r.Context(), chi.URLParam(r, "id"), description, duration, date)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, exerciseResponse{
		ID:          ex.User.ID,
		Username:    ex.User.Username,
		Date:        ex.DateString(),
		Duration:    ex.Duration,
		Description: ex.Description,
	})
}

func (h *ExerciseHandler) Logs(w http.ResponseWriter, r *http.Request) {
	var errs validate.Errs
	from, ef := validate.Date("from", r.URL.Query().Get("from"))
	if ef != nil {
		errs = append(errs, *ef)
	}
	to, ef := validate.Date("to", r.URL.Query().Get("to"))
	if ef != nil {
		errs = append(errs, *ef)
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "invalid request", errs)
		return
	}

	// A non-numeric limit is ignored rather than rejected; the log is
	// then unbounded.
	var limit int64
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	log, err := h.svc.List(r.Context(), chi.URLParam(r, "id"), from, to, limit)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}

	entries := make([]logEntry, 0, len(log.Exercises))
	for _, ex := range log.Exercises {
		entries = append(entries, logEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.DateString(),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, logResponse{
		Username: log.User.Username,
		ID:       log.User.ID,
		Count:    log.Total,
		Log:      entries,
	})
}
