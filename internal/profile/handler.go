package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/auth"
	"github.com/fitme-app/fitme/internal/telemetry/tracing"
	"github.com/fitme-app/fitme/pkg"
)

const (
	maxNameLength     = 100
	maxGenderLength   = 32
	maxImageURLLength = 2048
	maxAge            = 150
	maxHeightCm       = 300
	maxWeightKg       = 700
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Profile(ctx context.Context, userID string) (*Profile, error)
	UpsertProfile(ctx context.Context, u ProfileUpdate) (*Profile, error)
	Settings(ctx context.Context, userID string) (*Settings, error)
	UpdateSettings(ctx context.Context, userID string, u SettingsUpdate) (*Settings, error)
}

// UpdateProfileRequest is what the app sends from the personal info screen.
// The email is owned by the auth service and ignored here.
type UpdateProfileRequest struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Age          *int     `json:"age"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	Gender       *string  `json:"gender"`
	ProfileImage *string  `json:"profileImage"`
}

type UpdateSettingsRequest struct {
	ThemeMode            *string `json:"themeMode"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/user/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/user/profile", h.HandleUpdateProfile).Methods("POST", "PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/user/settings", h.HandleGetSettings).Methods("GET", "OPTIONS").Name("get-settings")
	r.HandleFunc("/user/settings", h.HandleUpdateSettings).Methods("POST", "PUT", "OPTIONS").Name("update-settings")
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := h.repo.Profile(ctx, userID)
	if err != nil {
		writeStoreError(w, "get profile", err)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	update, err := req.toUpdate(userID)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.repo.UpsertProfile(ctx, update)
	if err != nil {
		writeStoreError(w, "update profile", err)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.settings.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	s, err := h.repo.Settings(ctx, userID)
	if err != nil {
		writeStoreError(w, "get settings", err)
		return
	}

	pkg.WriteJSON(w, s, http.StatusOK)
}

func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.settings.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update settings, unmarshal json params: %s", err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}

	if req.ThemeMode != nil && !ValidThemeMode(*req.ThemeMode) {
		http.Error(w, "error, themeMode must be light, dark or system", http.StatusBadRequest)
		return
	}

	s, err := h.repo.UpdateSettings(ctx, userID, SettingsUpdate{
		ThemeMode:            req.ThemeMode,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		writeStoreError(w, "update settings", err)
		return
	}

	pkg.WriteJSON(w, s, http.StatusOK)
}

func (req UpdateProfileRequest) toUpdate(userID string) (ProfileUpdate, error) {
	name := trimmed(req.Name)
	gender := trimmed(req.Gender)
	image := trimmed(req.ProfileImage)

	switch {
	case name != nil && utf8.RuneCountInString(*name) > maxNameLength:
		return ProfileUpdate{}, errors.New("name too long")
	case gender != nil && utf8.RuneCountInString(*gender) > maxGenderLength:
		return ProfileUpdate{}, errors.New("gender too long")
	case image != nil && len(*image) > maxImageURLLength:
		return ProfileUpdate{}, errors.New("profileImage too long")
	case req.Age != nil && (*req.Age < 1 || *req.Age > maxAge):
		return ProfileUpdate{}, errors.New("age out of range")
	case req.Height != nil && (*req.Height <= 0 || *req.Height > maxHeightCm):
		return ProfileUpdate{}, errors.New("height out of range")
	case req.Weight != nil && (*req.Weight <= 0 || *req.Weight > maxWeightKg):
		return ProfileUpdate{}, errors.New("weight out of range")
	}

	return ProfileUpdate{
		UserID:   userID,
		Name:     name,
		ImageURL: image,
		Age:      req.Age,
		Height:   req.Height,
		Weight:   req.Weight,
		Gender:   gender,
	}, nil
}

// trimmed drops surrounding spaces, a blank value counts as not sent.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func writeStoreError(w http.ResponseWriter, operation string, err error) {
	if errors.Is(err, ErrUserNotFound) {
		http.Error(w, "error, unknown user", http.StatusNotFound)
		return
	}
	log.Errorf("%s: %s", operation, err)
	http.Error(w, operation+" failed", http.StatusInternalServerError)
}
