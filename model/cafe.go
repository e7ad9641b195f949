package model

import "fmt"

// SeatRanges are the allowed values for the seats bucket of a cafe.
var SeatRanges = []string{"0-10", "10-20", "20-30", "30-40", "40-50", "+50"}

type Cafe struct {
	CafeID       int     `gorm:"column:id_cafe;primaryKey;autoIncrement" json:"cafe_id"`
	Name         string  `gorm:"column:name;type:text;not null;uniqueIndex" json:"name"`
	Location     string  `gorm:"column:location;type:text;not null" json:"location"`
	MapURL       string  `gorm:"column:map_url;type:text;not null" json:"map_url"`
	ImgURL       string  `gorm:"column:img_url;type:text;not null" json:"img_url"`
	Seats        string  `gorm:"column:seats;type:text;not null" json:"seats"`
	CoffeePrice  float64 `gorm:"column:coffee_price;type:numeric;not null" json:"coffee_price"`
	HasSockets   bool    `gorm:"column:has_sockets;not null" json:"has_sockets"`
	HasToilet    bool    `gorm:"column:has_toilet;not null" json:"has_toilet"`
	HasWifi      bool    `gorm:"column:has_wifi;not null" json:"has_wifi"`
	CanTakeCalls bool    `gorm:"column:can_take_calls;not null" json:"can_take_calls"`

	// aggregate fields, written only when a comment is created
	Qualification float64 `gorm:"column:qualification;not null;default:0" json:"qualification"`
	TotalOpinions int     `gorm:"column:t_opinions;not null;default:0" json:"t_opinions"`
	Stars         string  `gorm:"column:stars;type:text;not null" json:"stars"`
}

func (Cafe) TableName() string {
	return "cafe"
}

// DisplayPrice formats the numeric price for the templates, the currency
// glyph is never stored in the database.
func (cafe Cafe) DisplayPrice() string {
	return fmt.Sprintf("£%.2f", cafe.CoffeePrice)
}
