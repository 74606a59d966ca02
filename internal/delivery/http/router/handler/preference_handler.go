package handler

import (
	"log/slog"
	"net/http"

	"suasana/internal/delivery/http/response"
	"suasana/internal/domain/entity"
	"suasana/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferenceHandler holds dependencies for preference handlers.
type PreferenceHandler struct {
	prefUc usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(prefUc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		prefUc: prefUc,
		logger: logger,
	}
}

// preferenceResult mirrors the legacy PreferensiResult payload, with the
// store-assigned ID surfaced as preferensiId.
type preferenceResult struct {
	PreferensiID string   `json:"preferensiId"`
	Ambience     string   `json:"ambience"`
	Name         string   `json:"name"`
	Utils        []string `json:"utils"`
	View         string   `json:"view"`
	UserID       string   `json:"userId"`
}

// createPreferenceResponse mirrors the legacy creation envelope.
type createPreferenceResponse struct {
	Success          bool             `json:"success"`
	Message          string           `json:"message"`
	PreferensiResult preferenceResult `json:"PreferensiResult"`
}

// preferenceItem is one element of the list response, carrying the document
// ID as id.
type preferenceItem struct {
	ID       string   `json:"id"`
	Ambience string   `json:"ambience"`
	Name     string   `json:"name"`
	Utils    []string `json:"utils"`
	View     string   `json:"view"`
	UserID   string   `json:"userId"`
}

func toPreferenceItem(pref *entity.Preference) preferenceItem {
	utils := pref.Utils
	if utils == nil {
		utils = []string{}
	}

	return preferenceItem{
		ID:       pref.ID,
		Ambience: pref.Ambience,
		Name:     pref.Name,
		Utils:    utils,
		View:     pref.View,
		UserID:   pref.UserID.String(),
	}
}

// Create handles the request to add a preference for the current user.
func (h *PreferenceHandler) Create(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := new(usecase.CreatePreferenceInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	pref, err := h.prefUc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	utils := pref.Utils
	if utils == nil {
		utils = []string{}
	}

	return c.JSON(http.StatusOK, createPreferenceResponse{
		Success: true,
		Message: "Berhasil menambahkan preferensi",
		PreferensiResult: preferenceResult{
			PreferensiID: pref.ID,
			Ambience:     pref.Ambience,
			Name:         pref.Name,
			Utils:        utils,
			View:         pref.View,
			UserID:       pref.UserID.String(),
		},
	})
}

// List handles the request to list the current user's preferences.
func (h *PreferenceHandler) List(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prefs, err := h.prefUc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]preferenceItem, 0, len(prefs))
	for _, pref := range prefs {
		items = append(items, toPreferenceItem(pref))
	}

	return c.JSON(http.StatusOK, items)
}
