package domain

import "fmt"

// Directory scopes: every entity stores its media under a deterministic
// directory derived from its id. These strings are part of the public path
// convention and must not change.
const (
	CategoryConservationArea = "conservation_area"
	CategoryDestination      = "tourist_destination"
	CategoryReview           = "tourist_destination_review"
	CategoryProfile          = "profile"
)

// AreaDirectory is the media directory for a conservation area.
func AreaDirectory(id int64) string {
	return fmt.Sprintf("%s/%d_dir", CategoryConservationArea, id)
}

// DestinationDirectory is the media directory for a tourist destination.
func DestinationDirectory(id int64) string {
	return fmt.Sprintf("%s/%d_dir", CategoryDestination, id)
}

// ReviewDirectory is the media directory for one user's review photos on
// one destination.
func ReviewDirectory(destinationID, userID int64) string {
	return fmt.Sprintf("%s/%d-%d_dir", CategoryReview, destinationID, userID)
}

// ProfilePhotoDirectory holds the fixed-name profile and cover photos;
// kind is "profile" or "cover".
func ProfilePhotoDirectory(kind string) string {
	return fmt.Sprintf("%s/%s", CategoryProfile, kind)
}

// GalleryDirectory is the media directory for a profile's gallery.
func GalleryDirectory(profileID int64) string {
	return fmt.Sprintf("%s/gallery/%d", CategoryProfile, profileID)
}
