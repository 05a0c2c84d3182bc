package domain

// Token is the opaque credential issued by the backend on a successful login.
// The zero value means no session.
type Token string

// IsZero reports whether t carries no credential.
func (t Token) IsZero() bool {
	return t == ""
}
