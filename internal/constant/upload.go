package constant

// Upload limits for the admin image upload endpoint.
const (
	MaxUploadFiles    = 100
	MaxUploadFileSize = 50 << 20 // 50MB per file
)

// Names of the derived size variants produced for every uploaded image.
const (
	SizeFull      = "full"
	SizeLarge     = "large"
	SizeMedium    = "medium"
	SizeThumbnail = "thumbnail"
	SizePreview   = "preview"
)
