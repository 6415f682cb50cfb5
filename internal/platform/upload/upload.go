package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// MaxImageBytes es el tamaño máximo aceptado por imagen (10MB).
	MaxImageBytes = 10 << 20
)

var (
	ErrNoImage       = errors.New("image file required")
	ErrImageTooLarge = errors.New("image too large (max 10MB)")
	ErrTooManyImages = errors.New("too many images")
	ErrEmptyImage    = errors.New("empty image file")
)

// ReadImages lee hasta max archivos del campo multipart field.
// Si max <= 0 no hay límite de cantidad.
func ReadImages(r *http.Request, field string, max int) ([][]byte, error) {
	if err := r.ParseMultipartForm(MaxImageBytes * 4); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[field]
	if max > 0 && len(headers) > max {
		return nil, ErrTooManyImages
	}

	out := make([][]byte, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", h.Filename, err)
		}
		data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", h.Filename, err)
		}
		if len(data) > MaxImageBytes {
			return nil, ErrImageTooLarge
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%s: %w", h.Filename, ErrEmptyImage)
		}
		out = append(out, data)
	}
	return out, nil
}

// ReadImage exige exactamente una imagen en el campo.
func ReadImage(r *http.Request, field string) ([]byte, error) {
	imgs, err := ReadImages(r, field, 1)
	if err != nil {
		return nil, err
	}
	if len(imgs) == 0 {
		return nil, ErrNoImage
	}
	return imgs[0], nil
}

// IsMultipart indica si el request viene como multipart/form-data.
func IsMultipart(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "multipart/form-data")
}
