package handlers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-deploy-dashboard/internal/inference"
	"ai-deploy-dashboard/internal/preview"
)

const uploadField = "file"

// readUpload decodes the multipart "file" field into an upload and its preview.
// Returned errors wrap the preview sentinels so statusFor can classify them.
func readUpload(c *gin.Context, limits preview.Limits) (inference.Upload, *preview.Preview, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return inference.Upload{}, nil, fmt.Errorf("%w: missing %q form field", preview.ErrEmptyImage, uploadField)
	}
	if limits.MaxBytes > 0 && fh.Size > limits.MaxBytes {
		return inference.Upload{}, nil, fmt.Errorf("%w: %d bytes > %d", preview.ErrTooLarge, fh.Size, limits.MaxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return inference.Upload{}, nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return inference.Upload{}, nil, fmt.Errorf("failed to read upload: %w", err)
	}

	pv, err := preview.Decode(fh.Filename, data, limits)
	if err != nil {
		return inference.Upload{}, nil, err
	}
	up := inference.Upload{FileName: fh.Filename, ContentType: pv.ContentType, Data: data}
	return up, pv, nil
}

// formSize reads an optional pair of positive integer form fields.
func formSize(c *gin.Context, wKey, hKey string) (int, int, bool, error) {
	ws, hs := c.PostForm(wKey), c.PostForm(hKey)
	if ws == "" && hs == "" {
		return 0, 0, false, nil
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return 0, 0, false, fmt.Errorf("%s and %s must both be positive integers", wKey, hKey)
	}
	return w, h, true, nil
}
