package server

import (
	"context"
	"net/http"

	"merchdesk/internal/handlers"
	applog "merchdesk/internal/log"
	"merchdesk/internal/views/components"
)

const staticDir = "web/static"

type route struct {
	path    string
	handler http.HandlerFunc
}

// protectedRoutes require a signed-in session and are registered in this order.
var protectedRoutes = []route{
	{"/app", handlers.Dashboard},
	{"/app/", handlers.Dashboard},
	{"/app/preferences/update", handlers.UpdatePreferences},
	{components.EditorPath, handlers.ProductEditor},
	{components.AddOptionPath, handlers.AddOption},
	{components.RemoveOptionPath, handlers.RemoveOption},
	{components.RegeneratePath, handlers.Regenerate},
	{components.PreviewPath, handlers.PreviewImage},
}

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/login", handlers.Login)
	applog.Debug(context.Background(), "route registered", "path", "/login")
	mux.HandleFunc("/logout", handlers.Logout)
	applog.Debug(context.Background(), "route registered", "path", "/logout")

	for _, route := range protectedRoutes {
		mux.Handle(route.path, handlers.RequireAuthentication(route.handler))
		applog.Debug(context.Background(), "route registered", "path", route.path, "protected", true)
	}

	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(staticDir))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
