package domain

// User is an account that can authenticate against the API.
// Admin grants access to the management endpoints.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Admin        bool
}

// Profile holds the public-facing data attached to a user account.
// ProfilePhotoPath and CoverPhotoPath are single stored paths; empty
// means no photo.
type Profile struct {
	ID               int64
	Name             string
	Phone            string
	ProfilePhotoPath string
	CoverPhotoPath   string
	UserID           int64
}

// Gallery is a per-profile photo collection.
type Gallery struct {
	ProfileID  int64
	PhotosPath PhotoSet
}
