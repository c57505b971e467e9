// Package contact provides HTTP handlers for the public contact form and the
// authenticated message inbox.
package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-backend/internal/domain/entity"
	"portfolio-backend/internal/handler/http/pathutil"
	"portfolio-backend/internal/handler/http/respond"
	contactUC "portfolio-backend/internal/usecase/contact"
)

// DTO represents the JSON structure for contact message data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(msg *entity.ContactMessage) DTO {
	return DTO{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Read:      msg.Read,
		CreatedAt: msg.CreatedAt,
	}
}

type SubmitHandler struct{ Svc *contactUC.Service }

// ServeHTTP accepts a contact form submission.
func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	msg, err := h.Svc.Submit(r.Context(), contactUC.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]int64{"id": msg.ID})
}

type ListHandler struct{ Svc *contactUC.Service }

// ServeHTTP lists received messages, newest first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, toDTO(msg))
	}
	respond.JSON(w, http.StatusOK, out)
}

type UnreadCountHandler struct{ Svc *contactUC.Service }

// ServeHTTP returns the number of unread messages.
func (h UnreadCountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.Svc.CountUnread(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int64{"unread": count})
}

type MarkReadHandler struct{ Svc *contactUC.Service }

// ServeHTTP flags a message as read.
func (h MarkReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(readPathID(r.URL.Path), "/admin/messages/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.MarkRead(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, contactUC.ErrMessageNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readPathID strips the trailing /read action segment.
func readPathID(path string) string {
	const suffix = "/read"
	if len(path) > len(suffix) && path[len(path)-len(suffix):] == suffix {
		return path[:len(path)-len(suffix)]
	}
	return path
}

type DeleteHandler struct{ Svc *contactUC.Service }

// ServeHTTP removes a message.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/messages/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, contactUC.ErrMessageNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
