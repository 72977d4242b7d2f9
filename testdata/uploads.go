package testdata

import (
	"path/filepath"
	"runtime"
)

// UploadImage returns the absolute path of the fixture image, independent of
// the calling test's working directory.
func UploadImage() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "uploads", "arsenal.png")
}
