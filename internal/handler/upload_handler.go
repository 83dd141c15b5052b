package handler

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Uploaded images wider than this are downscaled before saving.
const maxUploadWidth = 1600

// UploadImage stores an image from the admin editor under a unique filename
// and returns its public URL. JPEG and PNG uploads are downscaled when wider
// than maxUploadWidth; other image formats are stored as-is.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create upload directory")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	saved := false
	if ext == ".jpg" || ext == ".jpeg" || ext == ".png" {
		if err := saveResized(file, filePath, ext); err == nil {
			saved = true
		}
	}
	if !saved {
		if err := c.SaveUploadedFile(file, filePath); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to save file")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      a.uploadURL + "/" + newFilename,
		"filename": newFilename,
	})
}

func saveResized(file *multipart.FileHeader, filePath, ext string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxUploadWidth {
		scale := float64(maxUploadWidth) / float64(bounds.Dx())
		height := int(float64(bounds.Dy()) * scale)
		resized := image.NewRGBA(image.Rect(0, 0, maxUploadWidth, height))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
		img = resized
	}

	out, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer out.Close()

	if ext == ".png" {
		return png.Encode(out, img)
	}
	return jpeg.Encode(out, img, &jpeg.Options{Quality: 85})
}
