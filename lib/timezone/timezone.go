package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic(err)
	}
}

// the backend hands out naive UTC timestamps while everything shown
// to users is JST, so display-side date math goes through here
func Now() time.Time {
	return time.Now().In(Location)
}

// ParseServerTime interprets a backend timestamp. Values without an
// explicit offset are naive UTC ("2006-01-02 15:04:05" or RFC3339
// without zone) and get normalized to JST.
func ParseServerTime(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.In(Location), nil
		}
	}
	return time.Time{}, &time.ParseError{Layout: time.RFC3339, Value: s}
}
