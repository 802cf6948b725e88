package domain

import "errors"

// ErrNotLoggedIn is returned before any authenticated request is issued
// when the stored session has no token.
var ErrNotLoggedIn = errors.New("not logged in")
