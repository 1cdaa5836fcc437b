package models

import (
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

// User is a record of the remote users collection. The ID is assigned by the server
// and treated as opaque.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnmarshalJSON accepts the identifier under "_id" or "id", as a string, a number
// or an extended-JSON {"$oid": ...} object.
func (u *User) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return eris.New("invalid user JSON")
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		return nil
	}
	if !res.IsObject() {
		return eris.Errorf("user must be a JSON object, got %s", res.Type)
	}

	id := res.Get("_id")
	if !id.Exists() {
		id = res.Get("id")
	}
	if id.IsObject() {
		id = id.Get("$oid")
	}

	*u = User{
		ID:    id.String(),
		Name:  res.Get("name").String(),
		Email: res.Get("email").String(),
	}
	return nil
}

// UserPayload is the request body for create and update.
type UserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AddUserFlags struct {
	Name  string
	Email string
}

type EditUserFlags struct {
	ID    string
	Name  string
	Email string
}

type DeleteUserFlags struct {
	ID  string
	Yes bool
}
