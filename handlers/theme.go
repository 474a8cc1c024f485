package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"galaxydental/store"
	"galaxydental/utils"
)

// ThemeHandler persists the per-client light/dark flag. When a client
// has no stored value the configured default applies; the ambient
// color-scheme fallback lives in the front end, which only calls PUT
// once the visitor actually toggles.
type ThemeHandler struct {
	Repo    store.ThemeRepo
	Default string
}

func NewThemeHandler(repo store.ThemeRepo, defaultTheme string) *ThemeHandler {
	return &ThemeHandler{Repo: repo, Default: defaultTheme}
}

func validTheme(theme string) bool {
	return theme == "light" || theme == "dark"
}

// GetThemeHandler reads the flag: /api/preferences/theme?client=
func (h *ThemeHandler) GetThemeHandler(c *gin.Context) {
	clientID := c.Query("client")
	if clientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing client", "the 'client' query parameter is required")
		return
	}
	theme, err := h.Repo.Get(c.Request.Context(), clientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read theme preference", err.Error())
		return
	}
	stored := theme != ""
	if !stored {
		theme = h.Default
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme, "stored": stored})
}

// SetThemeHandler writes the flag.
func (h *ThemeHandler) SetThemeHandler(c *gin.Context) {
	var input struct {
		Client string `json:"client" binding:"required"`
		Theme  string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if !validTheme(input.Theme) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid theme", "theme must be 'light' or 'dark'")
		return
	}
	if err := h.Repo.Set(c.Request.Context(), input.Client, input.Theme); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store theme preference", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": input.Theme})
}
