package middleware

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"shopadmin/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalUploadedImages is the Fiber Locals key under which UploadImages stores
// the public paths of files written for the current request.
const LocalUploadedImages = "uploaded_images"

// ImagesField is the multipart form field carrying product image files.
const ImagesField = "images"

// UploadImages parses the multipart form, stores up to maxFiles files from the
// images field under uploadDir, and attaches their public /uploads paths to the
// request context. If any file fails to store, files already written for this
// request are removed so the handler never persists paths to partial uploads.
func UploadImages(uploadDir string, maxFiles int) fiber.Handler {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("Failed to create upload directory %s: %v", uploadDir, err)
	}

	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Request body must be multipart/form-data",
				"error":   err.Error(),
			})
		}

		files := form.File[ImagesField]
		if len(files) > maxFiles {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("A maximum of %d images may be uploaded", maxFiles),
			})
		}

		paths := make([]string, 0, len(files))
		stored := make([]string, 0, len(files))
		for _, file := range files {
			filename := uuid.New().String() + "_" + filepath.Base(file.Filename)
			dst := filepath.Join(uploadDir, filename)
			if err := c.SaveFile(file, dst); err != nil {
				log.Printf("Failed to store uploaded file %s: %v", file.Filename, err)
				for _, p := range stored {
					if removeErr := os.Remove(p); removeErr != nil {
						log.Printf("Failed to remove partial upload %s: %v", p, removeErr)
					}
				}
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Could not store uploaded file",
					"error":   err.Error(),
				})
			}
			stored = append(stored, dst)
			paths = append(paths, "/uploads/"+filename)
			metrics.ImagesUploaded.Inc()
		}

		c.Locals(LocalUploadedImages, paths)
		return c.Next()
	}
}

// UploadedImages returns the public paths attached by UploadImages, or an
// empty slice when the request carried no files.
func UploadedImages(c *fiber.Ctx) []string {
	paths, _ := c.Locals(LocalUploadedImages).([]string)
	if paths == nil {
		return []string{}
	}
	return paths
}
