package utils

import (
	"strings"

	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadFilename builds a collision-free name for an uploaded image,
// keeping the original extension.
func UploadFilename(ext string) string {
	return uuid.New().String() + strings.ToLower(ext)
}

func AllowedImageExt(ext string) bool {
	return allowedImageExt[strings.ToLower(ext)]
}
