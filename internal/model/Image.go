package model

import (
	"github.com/sovanra/uxfolio/internal/constant"
)

// SizeVariant is one derived rendition of an uploaded image on disk (or in
// the object store, depending on the storage driver).
type SizeVariant struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// ImageMetadata is extracted from the decoded source file.
type ImageMetadata struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Format     string `json:"format"`
	HasAlpha   bool   `json:"hasAlpha"`
	HasProfile bool   `json:"hasProfile"`
}

type Image struct {
	BaseModel
	ProjectID       string                 `json:"projectId"`
	OriginalName    string                 `json:"originalName"`
	Flow            constant.Flow          `json:"flow"`
	Tags            []string               `json:"tags"`
	Deliverable     string                 `json:"deliverable"`
	DeliverableName string                 `json:"deliverableName"`
	NdaRequired     bool                   `json:"ndaRequired"`
	Sizes           map[string]SizeVariant `json:"sizes"`
	Metadata        ImageMetadata          `json:"metadata"`
	UploadedAt      string                 `json:"uploadedAt"`
	AltText         string                 `json:"altText"`
	Caption         string                 `json:"caption"`
}
