package main

import (
	"log"
	"net/http"

	"coffee-wifi-server/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/", handlers.WithUser(handlers.HandleCafes))
	mux.HandleFunc("/cafe/", handlers.WithUser(handlers.HandleCafe))

	mux.HandleFunc("/register-cafe", handlers.RequireLogin(handlers.HandleRegisterCafe))
	mux.HandleFunc("/edit-cafe/", handlers.RequireLogin(handlers.HandleEditCafe))
	mux.HandleFunc("/delete-cafe/", handlers.RequireAdmin(handlers.HandleDeleteCafe))

	mux.HandleFunc("/create-count", handlers.WithUser(handlers.HandleCreateAccount))
	mux.HandleFunc("/login", handlers.HandleLogin)
	mux.HandleFunc("/logout", handlers.RequireLogin(handlers.HandleLogout))

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Coffee & Wifi listening on port " + port)
	log.Fatal(server.ListenAndServe())
}
