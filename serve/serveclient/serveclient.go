// Package serveclient is the HTTP client for the serve API, so callers
// share the server's request and response types without reaching into its
// internals.
package serveclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/HuXin0817/blokus-duo/serve/internal/types"
	"github.com/bytedance/sonic"
)

type (
	PlacementRequest   = types.PlacementRequest
	PlacementResponse  = types.PlacementResponse
	AnchorsRequest     = types.AnchorsRequest
	AnchorsResponse    = types.AnchorsResponse
	PlacementsRequest  = types.PlacementsRequest
	PlacementsResponse = types.PlacementsResponse
)

type Serve interface {
	PostPlacement(ctx context.Context, in *PlacementRequest) (*PlacementResponse, error)
	InquireAnchors(ctx context.Context, in *AnchorsRequest) (*AnchorsResponse, error)
	InquirePlacements(ctx context.Context, in *PlacementsRequest) (*PlacementsResponse, error)
}

type serveClient struct {
	baseUrl string
	client  *http.Client
}

func NewServe(addr string) Serve {
	return &serveClient{
		baseUrl: fmt.Sprintf("http://%s/api", addr),
		client:  &http.Client{},
	}
}

func (s *serveClient) PostPlacement(ctx context.Context, in *PlacementRequest) (*PlacementResponse, error) {
	out := new(PlacementResponse)
	if err := s.post(ctx, "/placement", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *serveClient) InquireAnchors(ctx context.Context, in *AnchorsRequest) (*AnchorsResponse, error) {
	out := new(AnchorsResponse)
	if err := s.post(ctx, "/anchors", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *serveClient) InquirePlacements(ctx context.Context, in *PlacementsRequest) (*PlacementsResponse, error) {
	out := new(PlacementsResponse)
	if err := s.post(ctx, "/placements", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *serveClient) post(ctx context.Context, path string, in, out any) error {
	body, err := sonic.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseUrl+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("serve: %s: %s", resp.Status, respBody)
	}

	return sonic.Unmarshal(respBody, out)
}
