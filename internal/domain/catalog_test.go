package domain

import "testing"

func TestInSeason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int
		month      int
		want       bool
	}{
		{"inside normal window", 3, 7, 5, true},
		{"window edges inclusive", 3, 7, 3, true},
		{"outside normal window", 3, 7, 8, false},
		{"wrap-around late month", 11, 2, 12, true},
		{"wrap-around early month", 11, 2, 1, true},
		{"wrap-around outside", 11, 2, 6, false},
		{"single month window", 4, 4, 4, true},
		{"zero window matches nothing", 0, 0, 6, false},
		{"half-zero window matches nothing", 5, 0, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &TouristDestination{StartSeason: tt.start, EndSeason: tt.end}
			if got := d.InSeason(tt.month); got != tt.want {
				t.Fatalf("InSeason(%d) with window %d..%d = %v, want %v",
					tt.month, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestMediaDirectories(t *testing.T) {
	t.Parallel()

	if got := AreaDirectory(3); got != "conservation_area/3_dir" {
		t.Fatalf("AreaDirectory(3) = %q", got)
	}
	if got := DestinationDirectory(9); got != "tourist_destination/9_dir" {
		t.Fatalf("DestinationDirectory(9) = %q", got)
	}
	if got := ReviewDirectory(9, 2); got != "tourist_destination_review/9-2_dir" {
		t.Fatalf("ReviewDirectory(9, 2) = %q", got)
	}
	if got := GalleryDirectory(7); got != "profile/gallery/7" {
		t.Fatalf("GalleryDirectory(7) = %q", got)
	}
	if got := ProfilePhotoDirectory("cover"); got != "profile/cover" {
		t.Fatalf("ProfilePhotoDirectory(cover) = %q", got)
	}
}
