package service

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper is the UserService counterpart of AuthServiceWrapper.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
