package handlers

import (
	"log"
	"net/http"

	"coffee-wifi-server/db"
)

func HandleResetTestDatabase(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		resetTestDatabase(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func resetTestDatabase(w http.ResponseWriter, r *http.Request) {
	err := db.ResetTestDatabase()
	if err != nil {
		log.Println("Error resetting test database: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
