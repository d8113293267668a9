package services

import "errors"

// Every failure here is client-attributable; handlers map these to HTTP
// statuses with errors.Is. Authentication failures deliberately share one
// message so callers cannot tell which precondition broke.
var (
	ErrInvalidCredentials     = errors.New("could not validate credentials")
	ErrInvalidPermissionLevel = errors.New("invalid level of permissions")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserTypeNotFound       = errors.New("user type not found")
	ErrEmailTaken             = errors.New("email already registered")
	ErrTitleTaken             = errors.New("user type title already registered")
)
