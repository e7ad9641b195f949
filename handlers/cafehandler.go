package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coffee-wifi-server/db"
	"coffee-wifi-server/internals"
	"coffee-wifi-server/model"
	"gorm.io/gorm"
)

func HandleCafes(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
	// "/" is a subtree pattern, reject anything but the root itself
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	cafeDAO := db.NewCafeDAO(db.GetDB())
	cafes, err := cafeDAO.GetCafes()
	if err != nil {
		log.Println("Error getting cafes: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	renderTemplate(w, "index.html", map[string]interface{}{
		"User":  CurrentUser(r),
		"Cafes": cafes,
	})
}

func HandleCafe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		showCafe(w, r)
	case "POST":
		commentCafe(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func showCafe(w http.ResponseWriter, r *http.Request) {
	cafeID, err := cafeIDFromPath(r.URL.Path)
	if err != nil {
		log.Println("Invalid cafe id: ", err)
		http.Error(w, "Invalid cafe id", http.StatusBadRequest)
		return
	}

	renderCafePage(w, r, cafeID, "")
}

// renderCafePage renders the detail page of a cafe, with an optional flash
// message above the comment form.
func renderCafePage(w http.ResponseWriter, r *http.Request, cafeID int, flash string) {
	cafeDAO := db.NewCafeDAO(db.GetDB())
	cafe, err := cafeDAO.GetCafeById(cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Println("Error getting cafe: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	commentDAO := db.NewCommentDAO(db.GetDB())
	comments, err := commentDAO.GetCommentsByCafe(cafeID)
	if err != nil {
		log.Println("Error getting comments: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := CurrentUser(r)
	canComment := false
	if user != nil {
		canComment = internals.CanComment(user.UserID, comments)
	}

	renderTemplate(w, "cafe.html", map[string]interface{}{
		"User":       user,
		"Cafe":       cafe,
		"Comments":   comments,
		"CanComment": canComment,
		"Flash":      flash,
	})
}

func commentCafe(w http.ResponseWriter, r *http.Request) {
	// commenting needs a logged-in user, viewing does not
	user := CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	cafeID, err := cafeIDFromPath(r.URL.Path)
	if err != nil {
		log.Println("Invalid cafe id: ", err)
		http.Error(w, "Invalid cafe id", http.StatusBadRequest)
		return
	}

	err = r.ParseForm()
	if err != nil {
		log.Println("Error parsing form: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}

	// check score value
	score, err := strconv.Atoi(r.FormValue("score"))
	if err != nil || score < internals.MinScore || score > internals.MaxScore {
		renderCafePage(w, r, cafeID, "Choose a score between 1 and 5.")
		return
	}

	comment := model.Comment{
		AuthorID: user.UserID,
		CafeID:   cafeID,
		Score:    score,
		Body:     r.FormValue("body"),
		Date:     time.Now().Format(model.CommentDateLayout),
	}

	commentDAO := db.NewCommentDAO(db.GetDB())
	err = commentDAO.CreateComment(&comment)
	if err != nil {
		if errors.Is(err, db.ErrAlreadyCommented) {
			renderCafePage(w, r, cafeID, "You have already commented on this cafe.")
			return
		}
		if errors.Is(err, db.ErrCafeNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cafe/"+strconv.Itoa(cafeID), http.StatusSeeOther)
}

func HandleRegisterCafe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderTemplate(w, "add_cafe.html", map[string]interface{}{
			"User":       CurrentUser(r),
			"Cafe":       model.Cafe{},
			"SeatRanges": model.SeatRanges,
			"ToEdit":     false,
		})
	case "POST":
		registerCafe(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func registerCafe(w http.ResponseWriter, r *http.Request) {
	cafe, validationErr := cafeFromForm(r)
	if validationErr != "" {
		renderTemplate(w, "add_cafe.html", map[string]interface{}{
			"User":       CurrentUser(r),
			"Cafe":       cafe,
			"SeatRanges": model.SeatRanges,
			"ToEdit":     false,
			"Flash":      validationErr,
		})
		return
	}

	cafeDAO := db.NewCafeDAO(db.GetDB())
	err := cafeDAO.CreateCafe(&cafe)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateCafeName) {
			renderTemplate(w, "add_cafe.html", map[string]interface{}{
				"User":       CurrentUser(r),
				"Cafe":       cafe,
				"SeatRanges": model.SeatRanges,
				"ToEdit":     false,
				"Flash":      "This cafe has already been registered.",
			})
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func HandleEditCafe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		showEditCafe(w, r)
	case "POST":
		editCafe(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func showEditCafe(w http.ResponseWriter, r *http.Request) {
	cafeID, err := cafeIDFromPath(r.URL.Path)
	if err != nil {
		log.Println("Invalid cafe id: ", err)
		http.Error(w, "Invalid cafe id", http.StatusBadRequest)
		return
	}

	cafeDAO := db.NewCafeDAO(db.GetDB())
	cafe, err := cafeDAO.GetCafeById(cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Println("Error getting cafe: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// the form is pre-filled from the stored record, the price is a
	// numeric column so no string stripping is involved
	renderTemplate(w, "add_cafe.html", map[string]interface{}{
		"User":       CurrentUser(r),
		"Cafe":       cafe,
		"SeatRanges": model.SeatRanges,
		"ToEdit":     true,
	})
}

func editCafe(w http.ResponseWriter, r *http.Request) {
	cafeID, err := cafeIDFromPath(r.URL.Path)
	if err != nil {
		log.Println("Invalid cafe id: ", err)
		http.Error(w, "Invalid cafe id", http.StatusBadRequest)
		return
	}

	cafe, validationErr := cafeFromForm(r)
	if validationErr != "" {
		cafe.CafeID = cafeID
		renderTemplate(w, "add_cafe.html", map[string]interface{}{
			"User":       CurrentUser(r),
			"Cafe":       cafe,
			"SeatRanges": model.SeatRanges,
			"ToEdit":     true,
			"Flash":      validationErr,
		})
		return
	}

	// static attributes only, the aggregate columns stay untouched
	fields := map[string]interface{}{
		"name":           cafe.Name,
		"location":       cafe.Location,
		"map_url":        cafe.MapURL,
		"img_url":        cafe.ImgURL,
		"seats":          cafe.Seats,
		"coffee_price":   cafe.CoffeePrice,
		"has_sockets":    cafe.HasSockets,
		"has_toilet":     cafe.HasToilet,
		"has_wifi":       cafe.HasWifi,
		"can_take_calls": cafe.CanTakeCalls,
	}

	cafeDAO := db.NewCafeDAO(db.GetDB())
	_, err = cafeDAO.UpdateCafeById(cafeID, fields)
	if err != nil {
		if errors.Is(err, db.ErrCafeNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cafe/"+strconv.Itoa(cafeID), http.StatusSeeOther)
}

func HandleDeleteCafe(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	cafeID, err := cafeIDFromPath(r.URL.Path)
	if err != nil {
		log.Println("Invalid cafe id: ", err)
		http.Error(w, "Invalid cafe id", http.StatusBadRequest)
		return
	}

	cafeDAO := db.NewCafeDAO(db.GetDB())
	err = cafeDAO.DeleteCafe(cafeID)
	if err != nil {
		if errors.Is(err, db.ErrCafeNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// cafeIDFromPath extracts the cafe id from URIs like /cafe/42. Paths with
// trailing segments do not resolve to a cafe.
func cafeIDFromPath(path string) (int, error) {
	parts := strings.Split(path, "/")
	if len(parts) != 3 || parts[2] == "" {
		return 0, errors.New("cafe id not provided")
	}

	cafeID, err := strconv.Atoi(parts[2])
	if err != nil || cafeID <= 0 {
		return 0, errors.New("invalid cafe id")
	}

	return cafeID, nil
}

// cafeFromForm builds a cafe from the submitted form. The second return
// value is a user-facing validation message, empty when the form is valid.
func cafeFromForm(r *http.Request) (model.Cafe, string) {
	err := r.ParseForm()
	if err != nil {
		return model.Cafe{}, "Wrong data provided."
	}

	cafe := model.Cafe{
		Name:         r.FormValue("name"),
		Location:     r.FormValue("location"),
		MapURL:       r.FormValue("map_url"),
		ImgURL:       r.FormValue("img_url"),
		Seats:        r.FormValue("seats"),
		HasSockets:   r.FormValue("has_sockets") == "on",
		HasToilet:    r.FormValue("has_toilet") == "on",
		HasWifi:      r.FormValue("has_wifi") == "on",
		CanTakeCalls: r.FormValue("can_take_calls") == "on",
	}

	// check non-empty fields
	if cafe.Name == "" || cafe.Location == "" {
		return cafe, "Name and location are required."
	}
	// check urls
	if !validHTTPURL(cafe.MapURL) {
		return cafe, "The map link is not a valid URL."
	}
	if !validHTTPURL(cafe.ImgURL) {
		return cafe, "The image link is not a valid URL."
	}
	// check seats bucket
	validSeats := false
	for _, seatRange := range model.SeatRanges {
		if cafe.Seats == seatRange {
			validSeats = true
			break
		}
	}
	if !validSeats {
		return cafe, "Choose a valid seat range."
	}
	// check price
	price, err := strconv.ParseFloat(r.FormValue("coffee_price"), 64)
	if err != nil || price < 0 {
		return cafe, "The coffee price is not a valid amount."
	}
	cafe.CoffeePrice = price

	return cafe, ""
}

func validHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
