package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/ironlog/internal/catalog"
	"github.com/claude/ironlog/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) exerciseCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(h.cat.List(catalog.Filter{}))
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) recentSessions(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cutoff := time.Now().AddDate(0, 0, -14)
	var recent []models.WorkoutSession
	for _, sess := range h.store.Sessions() {
		if !sess.Date.Before(cutoff) {
			recent = append(recent, sess)
		}
	}

	data, err := json.Marshal(recent)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
