package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFile(t *testing.T) {
	allowed := []string{"photo.png", "photo.jpg", "photo.JPEG", "animation.gif", "modern.webp"}
	for _, name := range allowed {
		assert.True(t, AllowedFile(name), "expected %q to be allowed", name)
	}

	rejected := []string{"document.pdf", "script.sh", "archive.zip", "noextension", "photo.svg"}
	for _, name := range rejected {
		assert.False(t, AllowedFile(name), "expected %q to be rejected", name)
	}
}

func TestPublicPath(t *testing.T) {
	assert.Equal(t, "/static/profile_pictures/abc.png", PublicPath(ProfilePicturesFolder, "abc.png"))
	assert.Equal(t, "/static/property_images/def.jpg", PublicPath(PropertyImagesFolder, "def.jpg"))
}

func TestPublicPaths(t *testing.T) {
	paths := PublicPaths(PropertyImagesFolder, []string{"a.jpg", "b.png"})
	assert.Equal(t, []string{"/static/property_images/a.jpg", "/static/property_images/b.png"}, paths)
}

func TestStore_RemoveMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.NoError(t, store.Remove(PropertyImagesFolder, "does-not-exist.jpg"))
}
