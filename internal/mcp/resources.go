// ABOUTME: MCP resource implementations for life-tracking data.
// ABOUTME: Provides lifetrack://today plus weekly and monthly report resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifetrack/internal/models"
	"github.com/harperreed/lifetrack/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// Resources carry no arguments, so they report on the configured
	// default user.
	if s.defaultUser == "" {
		return
	}

	// lifetrack://today - today's activities, metrics, and checklist
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifetrack://today",
		Name:        "Today's Log",
		Description: "Today's activities, metrics, and checklist for the default user",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// lifetrack://report/weekly - trailing-7-day analysis
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifetrack://report/weekly",
		Name:        "Weekly Report",
		Description: "Trailing-7-day activity distribution and score trend",
		MIMEType:    "application/json",
	}, s.handleWeeklyResource)

	// lifetrack://report/monthly - calendar-month analysis
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifetrack://report/monthly",
		Name:        "Monthly Report",
		Description: "Calendar-month activity distribution and score trend",
		MIMEType:    "application/json",
	}, s.handleMonthlyResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now().Format(models.DateLayout)

	activities, err := s.repo.ActivitiesOn(s.defaultUser, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	metrics, err := s.repo.MetricsOn(s.defaultUser, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}
	checklist, err := s.repo.GetChecklist(s.defaultUser, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}

	result := map[string]interface{}{
		"date":       today,
		"user":       s.defaultUser,
		"activities": activities,
		"metrics":    metrics,
		"checklist":  checklist,
		"counts": map[string]int{
			"activities": len(activities),
		},
	}
	return jsonResource("lifetrack://today", result)
}

func (s *Server) handleWeeklyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	analysis, err := report.Analyze(s.repo, s.defaultUser, report.PeriodWeekly, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly report: %w", err)
	}
	return jsonResource("lifetrack://report/weekly", analysis)
}

func (s *Server) handleMonthlyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	analysis, err := report.Analyze(s.repo, s.defaultUser, report.PeriodMonthly, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly report: %w", err)
	}
	return jsonResource("lifetrack://report/monthly", analysis)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
