package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

const (
	// MaxUploadBytes is the platform-wide CV size limit. Enforced here so a
	// too-large file never leaves the machine.
	MaxUploadBytes = 5 * 1024 * 1024

	uploadPath        = "/upload"
	premiumUploadPath = "/super-advanced/upload"

	uploadField = "file"
)

// ReadCVFile buffers and validates a CV before upload: at most
// MaxUploadBytes and sniffed as a PDF. Both checks fail locally, before any
// network traffic.
func ReadCVFile(filename string, file io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("cv file %s is larger than %s, only files up to %s are accepted",
			filepath.Base(filename), humanize.IBytes(uint64(len(data))), humanize.IBytes(MaxUploadBytes))
	}

	if !isPDF(filename, data) {
		return nil, fmt.Errorf("cv file %s is not a PDF, only application/pdf uploads are accepted", filepath.Base(filename))
	}

	return data, nil
}

func isPDF(filename string, data []byte) bool {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return false
	}
	sniff := data
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	return http.DetectContentType(sniff) == "application/pdf"
}

// UploadCV posts a CV to the platform and returns the server-assigned CV id
// the candidate stream is keyed by. Premium uploads go to the deep-analysis
// pipeline, everything else to the batch one.
func (c *CVMatchClient) UploadCV(ctx context.Context, filename string, file io.Reader, premium bool) (*types.UploadResponse, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	data, err := ReadCVFile(filename, file)
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(uploadField, filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	path := uploadPath
	if premium {
		path = premiumUploadPath
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, system.URL(c.options, path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := system.AddAuthHeaders(req, c.options.Token); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bts, _ := io.ReadAll(resp.Body)
		return nil, system.NewHTTPResponseError(resp.StatusCode, bts)
	}

	var uploadResp types.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	return &uploadResp, nil
}
