// user.go - Defines the User record persisted in the user store

package models // Declares the package name

import "encoding/json"

// User represents a registered user as stored in the JSON user file.
// Age keeps the raw submitted string; it is validated at registration
// time but never coerced afterwards.
type User struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       string    `json:"age"`
	City      string    `json:"city"`
	Interests Interests `json:"interests"`
}

// Interests holds the free-form interests field. Stored data may carry it
// either as a bare string or as a list of strings; both shapes decode into
// the same slice.
type Interests []string

func (i *Interests) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*i = Interests{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*i = Interests(list)
	return nil
}

// MarshalJSON writes a single entry back as a bare string, the shape a
// registration submission produces.
func (i Interests) MarshalJSON() ([]byte, error) {
	if len(i) == 1 {
		return json.Marshal(i[0])
	}
	return json.Marshal([]string(i))
}
