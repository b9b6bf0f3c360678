package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerWeekResource(srv, svc)
	registerHistoryResource(srv, svc)
	registerSnapshotTemplate(srv, svc)
	registerShoppingResource(srv, svc)
}

func registerWeekResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"kondate://week",
		"Week",
		mcp.WithResourceDescription("The displayed week with one dinner per day."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		week, err := svc.Week(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, week)
	})
}

func registerHistoryResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"kondate://history",
		"History",
		mcp.WithResourceDescription("Saved plans, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.History(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"count":   len(entries),
			"history": entries,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerSnapshotTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"kondate://history/{id}",
		"Saved Plan",
		mcp.WithTemplateDescription("One saved plan with every planned dish."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw, _ := request.Params.Arguments["id"].(string)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot id %q", raw)
		}
		dto, err := svc.SnapshotByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerShoppingResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"kondate://shopping",
		"Shopping List",
		mcp.WithResourceDescription("The shopping list with completion counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.Shopping(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
