package users

import (
	"strconv"
	"strings"
)

// User mirrors one entry of the users endpoint payload.
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the nested postal address. Every field is optional.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Company is the nested employer record.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
}

// City returns the trimmed city, or "" when the payload had none.
func (u User) City() string {
	return strings.TrimSpace(u.Address.City)
}

// DisplayName falls back to the username, then to the id, when name is blank.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	if username := strings.TrimSpace(u.Username); username != "" {
		return username
	}
	return "user #" + strconv.FormatInt(u.ID, 10)
}
