package timeutil

import "time"

var kolkataLocation = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("Asia/Kolkata", 5*60*60+30*60)
	}
	return loc
}

// Now returns the current time in Asia/Kolkata timezone.
func Now() time.Time {
	return time.Now().In(kolkataLocation)
}

// InKolkata converts provided time to Asia/Kolkata timezone.
func InKolkata(t time.Time) time.Time {
	return t.In(kolkataLocation)
}

// Location returns Asia/Kolkata location instance.
func Location() *time.Location {
	return kolkataLocation
}
