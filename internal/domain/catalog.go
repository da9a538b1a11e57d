package domain

import "time"

// ConservationArea groups tourist destinations under one protected region.
// RegionPath is the single region-map photo; PhotosPath is the gallery.
type ConservationArea struct {
	ID          int64
	Name        string
	Description string
	PhotosPath  PhotoSet
	RegionPath  string
}

// TouristDestination is a visitable site inside a conservation area.
// StartSeason and EndSeason are months (1..12); the window may wrap the
// year boundary.
type TouristDestination struct {
	ID                 int64
	Name               string
	Description        string
	Schedule           string
	Fare               string
	Contact            string
	Recommendation     string
	Difficulty         int
	Latitude           float64
	Longitude          float64
	Hikes              string
	PhotosPath         PhotoSet
	IsBeach            bool
	IsForest           bool
	IsVolcano          bool
	IsMountain         bool
	StartSeason        int
	EndSeason          int
	ConservationAreaID int64
}

// InSeason reports whether month falls inside the destination's visiting
// window, wrap-around (e.g. Nov..Feb) included. A zero window matches
// nothing.
func (d *TouristDestination) InSeason(month int) bool {
	if d.StartSeason < 1 || d.EndSeason < 1 {
		return false
	}
	if d.StartSeason <= d.EndSeason {
		return month >= d.StartSeason && month <= d.EndSeason
	}
	return month >= d.StartSeason || month <= d.EndSeason
}

// Review is one user's opinion on a destination; at most one per
// (destination, user) pair. ImagePath holds a single optional photo.
type Review struct {
	ID                   int64
	Title                string
	Text                 string
	Date                 time.Time
	Calification         int
	ImagePath            string
	UserID               int64
	TouristDestinationID int64
}

// DestinationMark links a user to a destination as a favorite or a
// visited record.
type DestinationMark struct {
	ID                   int64
	UserID               int64
	TouristDestinationID int64
}
