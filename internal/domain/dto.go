package domain

// DTOs (Data Transfer Objects) - Domain layer request structures

type (
	// LoginRequest struct - credentials posted as a form to the login endpoint
	LoginRequest struct {
		Username string
		Password string
	}

	// RegisterRequest struct - registration payload
	RegisterRequest struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Username        string `json:"username"`
		Email           string `json:"email"`
		PhoneNumber     string `json:"phone_number"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	// RegisterResponse struct - registration acknowledgement
	RegisterResponse struct {
		Message string `json:"message"`
	}
)
