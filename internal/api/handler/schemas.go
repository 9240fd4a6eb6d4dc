package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=60"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"  validate:"max=400"`
	Password string `json:"password" validate:"required,password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,password"`
}

// --- Admin ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=60"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"  validate:"max=400"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN OWNER USER"`
}

type createStoreRequest struct {
	Name        string `json:"name"          validate:"required,max=255"`
	Email       string `json:"email"         validate:"omitempty,email"`
	Address     string `json:"address"       validate:"max=400"`
	OwnerUserID string `json:"owner_user_id" validate:"omitempty,uuid"`
}

// --- Ratings ---

// ratingRequest binds value as a float so that non-integers like 3.5 reach
// the integer check and are rejected with the rating error instead of a
// generic bind failure. Strings never bind and fail the same way.
type ratingRequest struct {
	Value *float64 `json:"value"`
}
