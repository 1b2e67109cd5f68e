package photos

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/auth"
	"github.com/fitme-app/fitme/internal/telemetry/metrics"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
	"github.com/fitme-app/fitme/pkg"
)

// 10 MB
const maxUploadedImageSize = 10 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=photos_test

type photosRepo interface {
	Add(ctx context.Context, p Photo) (*Photo, error)
	List(ctx context.Context, userID string) ([]Photo, error)
}

type imageUploader interface {
	Upload(ctx context.Context, userID, filename, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

type AddPhotoRequest struct {
	ImageURL string  `json:"imageUrl"`
	Caption  *string `json:"caption"`
}

type Handler struct {
	repo           photosRepo
	uploader       imageUploader
	metricsManager *metrics.Manager
	now            func() time.Time
}

// NewHandler creates the photos handler. The uploader is nil when object
// storage is not configured, only image URLs are accepted then.
func NewHandler(repo photosRepo, uploader imageUploader, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		uploader:       uploader,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress/photo", h.HandleUpload).Methods("POST", "OPTIONS").Name("add-photo")
	r.HandleFunc("/progress/photos", h.HandleList).Methods("GET", "OPTIONS").Name("list-photos")
}

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.upload")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var photo Photo
	uploaded := false
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, pkg.ContentType.JSON):
		var req AddPhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("add photo, unmarshal json params: %s", err)
			http.Error(w, "add photo failed", http.StatusBadRequest)
			return
		}
		req.ImageURL = strings.TrimSpace(req.ImageURL)
		if req.ImageURL == "" {
			http.Error(w, "error, imageUrl is required", http.StatusBadRequest)
			return
		}
		photo = Photo{ImageURL: req.ImageURL, Caption: req.Caption}
	case strings.HasPrefix(contentType, "multipart/form-data"):
		imageURL, caption, err := h.uploadImage(ctx, userID, r)
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		photo = Photo{ImageURL: imageURL, Caption: caption}
		uploaded = true
	default:
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	photo.UserID = userID
	photo.Timestamp = h.now().UTC()

	added, err := h.repo.Add(ctx, photo)
	if err != nil {
		if uploaded {
			h.discardUpload(ctx, photo.ImageURL)
		}
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown user", http.StatusNotFound)
			return
		}
		log.Errorf("add photo: %s", err)
		http.Error(w, "add photo failed", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterProgressPhotos.Inc()
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

// discardUpload removes an image no photo row points to. The request may already
// be cancelled, so the cleanup gets its own context.
func (h *Handler) discardUpload(ctx context.Context, imageURL string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := h.uploader.Delete(ctx, imageURL); err != nil {
		log.Errorf("orphaned progress photo %s: %s", imageURL, err)
	}
}

type badUploadError struct {
	msg string
}

func (e badUploadError) Error() string {
	return e.msg
}

func (h *Handler) uploadImage(ctx context.Context, userID string, r *http.Request) (string, *string, error) {
	if h.uploader == nil {
		return "", nil, ErrPhotoStorageDisabled
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadedImageSize)
	if err := r.ParseMultipartForm(maxUploadedImageSize); err != nil {
		return "", nil, badUploadError{msg: "invalid form or image too big"}
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return "", nil, badUploadError{msg: "error, image is required"}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("upload image, close file: %s", err)
		}
	}()

	fileType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(fileType, "image/") {
		return "", nil, badUploadError{msg: "error, only images are accepted"}
	}

	log.Debugf("upload image, filename: %s, size: %d, content-type: %s", header.Filename, header.Size, fileType)

	imageURL, err := h.uploader.Upload(ctx, userID, header.Filename, fileType, file, header.Size)
	if err != nil {
		return "", nil, err
	}

	var caption *string
	if c := strings.TrimSpace(r.FormValue("caption")); c != "" {
		caption = &c
	}

	return imageURL, caption, nil
}

func (h *Handler) writeUploadError(w http.ResponseWriter, err error) {
	var badUpload badUploadError
	switch {
	case errors.Is(err, ErrPhotoStorageDisabled):
		http.Error(w, "image uploads are not available", http.StatusServiceUnavailable)
	case errors.As(err, &badUpload):
		http.Error(w, badUpload.msg, http.StatusBadRequest)
	default:
		log.Errorf("upload image: %s", err)
		http.Error(w, "upload image failed", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	photos, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list photos: %s", err)
		http.Error(w, "list photos failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, photos, http.StatusOK)
}
