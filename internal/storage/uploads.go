package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Folder names for the two upload kinds.
const (
	ProfilePicturesFolder = "profile_pictures"
	PropertyImagesFolder  = "property_images"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Store saves uploaded files under a base directory, one subfolder per kind,
// with generated unique filenames.
type Store struct {
	baseDir string
}

// NewStore creates a file store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// AllowedFile reports whether the filename carries an accepted image extension.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save writes an uploaded file into <base>/<folder>/ under a unique name and
// returns the generated filename.
func (s *Store) Save(file *multipart.FileHeader, folder string) (string, error) {
	if file == nil || file.Filename == "" {
		return "", fmt.Errorf("empty upload")
	}
	if !AllowedFile(file.Filename) {
		return "", fmt.Errorf("file type not allowed: %s", file.Filename)
	}

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

// Remove deletes a previously saved file. Missing files are not an error.
func (s *Store) Remove(folder, filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, folder, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicPath returns the URL path a stored file is served under.
func PublicPath(folder, filename string) string {
	return "/static/" + folder + "/" + filename
}

// PublicPaths maps a list of stored filenames to their URL paths.
func PublicPaths(folder string, filenames []string) []string {
	paths := make([]string, 0, len(filenames))
	for _, f := range filenames {
		paths = append(paths, PublicPath(folder, f))
	}
	return paths
}
