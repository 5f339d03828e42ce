package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PJRenu/LegaLuna/api/http/presenter"
	"github.com/PJRenu/LegaLuna/pkg/knowledge"
	"github.com/PJRenu/LegaLuna/pkg/language"
)

const excerptRunes = 160

// DocumentLister exposes the loaded knowledge base.
type DocumentLister interface {
	Documents(lang language.Code) []knowledge.Document
}

// DocumentItem is one knowledge base entry in a listing.
type DocumentItem struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Language string `json:"language"`
	Excerpt  string `json:"excerpt"`
}

// DocumentPage is a window over the knowledge base.
type DocumentPage struct {
	Items  []DocumentItem `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type DocumentsHandler struct{ docs DocumentLister }

func NewDocumentsHandler(docs DocumentLister) *DocumentsHandler {
	return &DocumentsHandler{docs: docs}
}

// List returns the documents answers are grounded on.
// @Summary List knowledge base documents
// @Tags    documents
// @Produce json
// @Param   language query string false "en or hi"
// @Param   limit    query int    false "page size (1-200, default 50)"
// @Param   offset   query int    false "items to skip"
// @Security ApiKeyAuth
// @Success 200 {object} DocumentPage
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /api/documents [get]
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	var lang language.Code
	if v := strings.TrimSpace(c.Query("language")); v != "" {
		code, err := language.Parse(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "unsupported language")
		}
		lang = code
	}
	limit, offset := parseLimitOffset(c, 50)

	all := h.docs.Documents(lang)
	page := DocumentPage{Items: []DocumentItem{}, Total: len(all), Limit: limit, Offset: offset}
	if offset < len(all) {
		end := min(offset+limit, len(all))
		for _, d := range all[offset:end] {
			page.Items = append(page.Items, DocumentItem{
				ID:       d.ID.String(),
				Source:   d.Source,
				Language: d.Language.String(),
				Excerpt:  excerpt(d.Content),
			})
		}
	}
	return presenter.JSON(c, http.StatusOK, page)
}

func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptRunes {
		return s
	}
	return strings.TrimSpace(string(r[:excerptRunes])) + "…"
}
