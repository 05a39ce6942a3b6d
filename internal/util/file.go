package util

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// GetProjectDirectoryPath returns the storage-relative directory that holds
// every derived variant of a project's images.
func GetProjectDirectoryPath(projectId string) string {
	return projectId
}

// ToProjectDirectoryPath joins a variant file name into its project directory.
func ToProjectDirectoryPath(projectId string, filename string) string {
	return filepath.Join(GetProjectDirectoryPath(projectId), filepath.Base(filename))
}

// BaseNameWithoutExt strips the directory and extension from an uploaded
// file name. Example: "img/wireframe-checkout.png" -> "wireframe-checkout".
func BaseNameWithoutExt(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CleanFileName turns an uploaded file name into human readable words for alt
// text. Example: "user-research_interview-01.png" -> "user research interview 01".
func CleanFileName(fileName string) string {
	name := BaseNameWithoutExt(fileName)
	name = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

// VariantFileName builds the on-disk name for one derived size variant.
// Example output: "wireframe-checkout-1736951096000-V1StGXR8-thumbnail.jpg"
func VariantFileName(originalName string, sizeName string) (string, error) {
	suffix, err := GenerateNChar(8)
	if err != nil {
		return "", fmt.Errorf("failed to generate file suffix: %w", err)
	}

	base := Slugify(BaseNameWithoutExt(originalName))
	if base == "" {
		base = "image"
	}

	return fmt.Sprintf("%s-%d-%s-%s.jpg", base, time.Now().UnixMilli(), suffix, sizeName), nil
}
