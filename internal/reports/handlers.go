package reports

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"everbright-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles report endpoints with the service.
type Handlers struct {
	Service   *Service
	UploadDir string
}

// Generate POST /api/v1/reports/generate
// Multipart form: "pending_users" (one CSV), "course_status" (one or more
// CSVs), optional "match" (email|domain) and "group" fields. Streams the
// first generated workbook back as an attachment.
func (h *Handlers) Generate(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, "Expected a multipart form upload", fiber.StatusBadRequest, nil)
	}

	pendingFiles := form.File["pending_users"]
	statusFiles := form.File["course_status"]
	if len(pendingFiles) != 1 || len(statusFiles) == 0 {
		return response.Error(c, "Please upload both Pending Users and Course Status files", fiber.StatusBadRequest, nil)
	}

	match, ok := ParseMatchMode(c.FormValue("match"))
	if !ok {
		return response.Error(c, `match must be "email" or "domain"`, fiber.StatusBadRequest, nil)
	}
	group := strings.TrimSpace(c.FormValue("group"))

	pendingPath, err := h.saveUpload(c, pendingFiles[0])
	if err != nil {
		return response.Error(c, "Failed to store uploaded file", fiber.StatusInternalServerError, nil)
	}
	statusPaths := make([]string, 0, len(statusFiles))
	for _, fh := range statusFiles {
		path, err := h.saveUpload(c, fh)
		if err != nil {
			return response.Error(c, "Failed to store uploaded file", fiber.StatusInternalServerError, nil)
		}
		statusPaths = append(statusPaths, path)
	}

	results, err := h.Service.Generate(c.Context(), GenerateInput{
		PendingPath: pendingPath,
		StatusPaths: statusPaths,
		Match:       match,
		Group:       group,
	})
	if err != nil {
		return err // mapped to the error taxonomy by the global error handler
	}

	first := results[0]
	return c.Download(first.Path, first.FileName)
}

// saveUpload stores one uploaded file under UploadDir with a uuid prefix so
// concurrent requests never share a file.
func (h *Handlers) saveUpload(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + "_" + filepath.Base(fh.Filename)
	path := filepath.Join(h.UploadDir, name)
	if err := c.SaveFile(fh, path); err != nil {
		return "", err
	}
	return path, nil
}
