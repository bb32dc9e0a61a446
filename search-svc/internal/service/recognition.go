package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"foodfinder/search-svc/internal/domain"
)

var ErrRecognitionUnavailable = errors.New("food recognition service unavailable")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const predictPath = "/predict"

// RecognitionClient forwards an uploaded photo to the ML service. URL is the
// service base address; requests go to its predict endpoint.
type RecognitionClient struct {
	URL    string
	client HTTPClient
}

func NewRecognitionClient(url string, client HTTPClient) *RecognitionClient {
	if client == nil {
		client = &http.Client{}
	}
	return &RecognitionClient{URL: url, client: client}
}

func (c *RecognitionClient) Recognize(ctx context.Context, filename, contentType string, image io.Reader) (*domain.Recognition, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.URL, "/")+predictPath, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecognitionUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrRecognitionUnavailable, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var recognition domain.Recognition
	if err := json.NewDecoder(resp.Body).Decode(&recognition); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrRecognitionUnavailable, err)
	}

	if recognition.TopPrediction == nil {
		for i := range recognition.Predictions {
			if recognition.TopPrediction == nil || recognition.Predictions[i].Confidence > recognition.TopPrediction.Confidence {
				recognition.TopPrediction = &recognition.Predictions[i]
			}
		}
	}
	return &recognition, nil
}
