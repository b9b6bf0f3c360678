package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/kondate/pkg/dispatch"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	for _, cmd := range svc.Table.Commands() {
		registerCommandTool(srv, svc, cmd)
	}
	registerGetWeekTool(srv, svc)
	registerSearchDishesTool(srv, svc)
	registerListFavoritesTool(srv, svc)
}

func registerCommandTool(srv *server.MCPServer, svc *Service, cmd *dispatch.Command) {
	opts := []mcp.ToolOption{mcp.WithDescription(cmd.Description + ".")}
	for _, p := range cmd.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description + ".")}
		if p.Required {
			props = append(props, mcp.Required())
		}
		if len(p.Enum) > 0 {
			props = append(props, mcp.Enum(p.Enum...))
		}
		opts = append(opts, mcp.WithString(p.Name, props...))
	}
	tool := mcp.NewTool(ToolName(cmd.Name), opts...)

	name := cmd.Name
	params := cmd.Params
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(dispatch.Args, len(params))
		for _, p := range params {
			if p.Required {
				v, err := request.RequireString(p.Name)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				args[p.Name] = v
				continue
			}
			if v := request.GetString(p.Name, ""); v != "" {
				args[p.Name] = v
			}
		}

		res, err := svc.Run(ctx, name, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerGetWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_week",
		mcp.WithDescription("Return the displayed week with one dinner per day."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		week, err := svc.Week(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(week)
	})
}

func registerSearchDishesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_dishes",
		mcp.WithDescription("Suggest dishes from the catalog and favorites matching a query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive substring to search for."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of suggestions (default 5)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 0)

		names, err := svc.Search(ctx, strings.TrimSpace(query), limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"count":   len(names),
			"results": names,
		})
	})
}

func registerListFavoritesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_favorites",
		mcp.WithDescription("List favorite dishes in the order they were added."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		favs, err := svc.Favorites(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"count":     len(favs),
			"favorites": favs,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
