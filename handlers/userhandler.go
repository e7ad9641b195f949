package handlers

import (
	"errors"
	"log"
	"net/http"

	"coffee-wifi-server/db"
	"coffee-wifi-server/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderTemplate(w, "create_count.html", map[string]interface{}{
			"User": CurrentUser(r),
		})
	case "POST":
		createAccount(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func createAccount(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		log.Println("Error parsing form: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	// check non-empty fields
	if name == "" || email == "" || password == "" {
		renderTemplate(w, "create_count.html", map[string]interface{}{
			"User":  CurrentUser(r),
			"Flash": "All fields are required.",
		})
		return
	}

	// only the hash is stored, never the raw password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error hashing password: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	userDAO := db.NewUserDAO(db.GetDB())
	err = userDAO.CreateUser(&user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			renderTemplate(w, "create_count.html", map[string]interface{}{
				"User":  CurrentUser(r),
				"Flash": "This email is already registered.",
			})
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// auto login after registration
	err = establishSession(w, user.UserID)
	if err != nil {
		log.Println("Error creating session: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func HandleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderTemplate(w, "login.html", map[string]interface{}{
			"User": CurrentUser(r),
		})
	case "POST":
		login(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func login(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		log.Println("Error parsing form: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	// get user by email, exact match
	userDAO := db.NewUserDAO(db.GetDB())
	user, err := userDAO.GetUserByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		renderTemplate(w, "login.html", map[string]interface{}{
			"Flash": "This email isn't registered",
		})
		return
	}

	// check password, constant time comparison
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		renderTemplate(w, "login.html", map[string]interface{}{
			"Flash": "Wrong password",
		})
		return
	}

	err = establishSession(w, user.UserID)
	if err != nil {
		log.Println("Error creating session: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err == nil {
		sessionDAO := db.NewSessionDAO(db.GetDB())
		err = sessionDAO.DeleteSession(cookie.Value)
		if err != nil {
			log.Println("Error deleting session: ", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// establishSession binds a fresh server-side session to the response cookie.
func establishSession(w http.ResponseWriter, userID int) error {
	token := uuid.NewString()

	sessionDAO := db.NewSessionDAO(db.GetDB())
	err := sessionDAO.CreateSession(&model.Session{
		Token:  token,
		UserID: userID,
	})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
