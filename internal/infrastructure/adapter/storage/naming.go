package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// DefaultExtension is used when the uploaded filename has none
const DefaultExtension = "jpg"

// fileExtension returns the text after the last '.' of the base name, or DefaultExtension
func fileExtension(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	dot := strings.LastIndex(base, ".")
	if dot < 0 || dot == len(base)-1 {
		return DefaultExtension
	}
	return base[dot+1:]
}

// objectName builds "<random>.<ext>" for an uploaded filename
func objectName(newName func() string, filename string) string {
	return newName() + "." + fileExtension(filename)
}

// userFolder is the per-user directory or key prefix
func userFolder(userID uint64) string {
	return fmt.Sprintf("user_%d", userID)
}

// randomName is the default name generator
func randomName() string {
	return uuid.NewString()
}
