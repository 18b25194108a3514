package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// TaskHandler handles HTTP requests for task operations. Every handler
// resolves the owner from the request context; task ids never cross user
// boundaries.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleList handles GET /tasks requests.
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	tasks, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("error fetching tasks"))
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// HandleCreate handles POST /tasks/add requests.
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	task, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isTaskValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("error creating task"))
		return
	}

	writeJSON(w, http.StatusCreated, model.TaskResponse{
		Message: "task created successfully",
		Task:    *task,
	})
}

// HandleUpdate handles PUT /tasks/{id} requests.
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	taskID, ok := taskIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("task not found"))
		return
	}

	var req model.UpdateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	task, err := h.service.Update(r.Context(), userID, taskID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case isTaskValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("error updating task"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.TaskResponse{
		Message: "task updated successfully",
		Task:    *task,
	})
}

// HandleDelete handles DELETE /tasks/{id} requests.
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	taskID, ok := taskIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("task not found"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("error deleting task"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("task deleted successfully"))
}

// taskIDParam parses the {id} route parameter. A non-numeric id can never
// name an existing task, so callers treat it as not found.
func taskIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isTaskValidationError(err error) bool {
	return errors.Is(err, service.ErrTaskFieldsRequired) ||
		errors.Is(err, service.ErrInvalidStatus) ||
		errors.Is(err, service.ErrInvalidPriority) ||
		errors.Is(err, service.ErrInvalidDueDate)
}
