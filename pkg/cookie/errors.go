package cookie

import "errors"

var (
	ErrTimeParse          = errors.New("cookie.invalid_timestamp")
	ErrMalformedSetCookie = errors.New("cookie.malformed_set_cookie")
	ErrNoSuchAttribute    = errors.New("cookie.no_such_attribute")
	ErrInvalidOwnerURL    = errors.New("cookie.invalid_owner_url")
)
