package tamilcal

// Tag is a rule-derived observance marker for a day. Tags are heuristics
// computed from element indices alone; they are not authoritative almanac
// entries.
type Tag struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Method string `json:"method,omitempty"`
}

// ObservanceTags derives the day's observances from the tithi and
// nakshatra numbers.
func ObservanceTags(tithiNumber, nakshatraNumber int) []Tag {
	tags := []Tag{}
	if tithiNumber == 30 {
		tags = append(tags, Tag{Key: "AMAVASAI", Label: "Amavasai"})
	}
	if tithiNumber == 15 {
		tags = append(tags, Tag{Key: "POURNAMI", Label: "Pournami"})
	}
	if tithiNumber == 11 || tithiNumber == 26 {
		tags = append(tags, Tag{Key: "EKADASHI", Label: "Ekadashi"})
	}
	if tithiNumber == 6 || tithiNumber == 21 {
		tags = append(tags, Tag{Key: "SASHTI", Label: "Sashti"})
	}
	if nakshatraNumber == 3 {
		tags = append(tags, Tag{Key: "KIRUTHIGAI", Label: "Kiruthigai"})
	}
	// Pradosham is classically Trayodashi around sunset; tagged here by
	// tithi number only.
	if tithiNumber == 13 || tithiNumber == 28 {
		tags = append(tags, Tag{Key: "PRADOSHAM", Label: "Pradosham", Method: "tithiNumberOnly"})
	}
	return tags
}
