package authorization

import (
	"fmt"
	"strconv"
)

// Principal is the authenticated actor. The engine uses ID as history author.
type Principal interface {
	ID() uint
	Role() Role
}

// User is a principal backed by a loaded account.
type User struct {
	UserID   uint
	UserRole Role
	Email    string
}

func (u User) ID() uint   { return u.UserID }
func (u User) Role() Role { return u.UserRole }

// Claims is a principal backed by a loosely typed claims map, e.g. decoded JWT claims.
// The role claim is read from "role"; the id from "user_id".
type Claims map[string]any

func (c Claims) ID() uint {
	id, _ := claimUint(c["user_id"])
	return id
}

func (c Claims) Role() Role {
	s, _ := c["role"].(string)
	r, _ := ParseRole(s)
	return r
}

// claimUint accepts the numeric shapes JSON decoding and hand-built maps produce.
func claimUint(v any) (uint, bool) {
	switch n := v.(type) {
	case uint:
		return n, n > 0
	case int:
		return uint(n), n > 0
	case int64:
		return uint(n), n > 0
	case float64:
		if n <= 0 || n != float64(uint(n)) {
			return 0, false
		}
		return uint(n), true
	case string:
		u, err := strconv.ParseUint(n, 10, 64)
		if err != nil || u == 0 {
			return 0, false
		}
		return uint(u), true
	case fmt.Stringer:
		return claimUint(n.String())
	}
	return 0, false
}
