package output

import "storefront/internal/domain"

// Navigator interface - Output port
// Lets the application ask the views layer to move the visitor elsewhere,
// e.g. to the login view after de-authentication.
type Navigator interface {
	Navigate(view domain.View)
}
