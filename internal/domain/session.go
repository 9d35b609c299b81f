package domain

import "time"

// Persistent storage keys, scoped per visitor by the storage adapter
const (
	StorageKeyAccessToken  = "jwt_access"
	StorageKeyRefreshToken = "jwt_refresh"
	StorageKeyCart         = "cart"
	StorageKeyWishlist     = "wishlist"
)

// TokenPair is the credential pair returned by the login endpoint.
// Access is the bearer token; Refresh is optional.
type TokenPair struct {
	Access  string
	Refresh string
}

// UserProfile is the backend profile of the authenticated customer
type UserProfile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// View is a navigation target the views layer should move the visitor to
type View string

const (
	// ViewLogin - unauthenticated landing view
	ViewLogin View = "/login"
	// ViewHome - catalog landing view
	ViewHome View = "/home"
)

// Visitor represents one browser visitor and the services bound to it
type Visitor struct {
	ID             string    // value of the visitor cookie
	Bundle         any       // per-visitor services, owned by the application layer
	LastAccessTime time.Time // For idle expiration checking
	timeout        time.Duration
}

// NewVisitor creates a visitor record with the given idle timeout
func NewVisitor(id string, bundle any, timeout time.Duration) *Visitor {
	return &Visitor{
		ID:             id,
		Bundle:         bundle,
		LastAccessTime: time.Now(),
		timeout:        timeout,
	}
}

// IsExpired checks if the visitor has been idle longer than the configured timeout
func (v *Visitor) IsExpired() bool {
	return time.Since(v.LastAccessTime) > v.timeout
}
