// Package tamilcal derives the Tamil solar calendar from the Sun's
// sidereal longitude.
package tamilcal

// TamilMonth is one of the twelve solar months.
type TamilMonth struct {
	Index   int    `json:"index"`
	Tamil   string `json:"tamil"`
	English string `json:"english"`
}

// tamilMonths is indexed by the rasi the Sun occupies (Chittirai = Mesha).
var tamilMonths = [12]TamilMonth{
	{0, "சித்திரை", "Chittirai"},
	{1, "வைகாசி", "Vaikasi"},
	{2, "ஆனி", "Aani"},
	{3, "ஆடி", "Aadi"},
	{4, "ஆவணி", "Aavani"},
	{5, "புரட்டாசி", "Purattasi"},
	{6, "ஐப்பசி", "Aippasi"},
	{7, "கார்த்திகை", "Karthigai"},
	{8, "மார்கழி", "Margazhi"},
	{9, "தை", "Thai"},
	{10, "மாசி", "Maasi"},
	{11, "பங்குனி", "Panguni"},
}

// samvatsara60 is the standard 60-year Jupiter cycle of year names.
var samvatsara60 = [60]string{
	"Prabhava", "Vibhava", "Shukla", "Pramodoota", "Prajothpatti", "Aangirasa", "Shrimukha", "Bhava", "Yuva", "Dhata",
	"Eeshwara", "Bahudhanya", "Pramathi", "Vikrama", "Vishu", "Chitrabhanu", "Subhanu", "Dharana", "Parthiva", "Vyaya",
	"Sarvajit", "Sarvadhari", "Virodhi", "Vikruti", "Khara", "Nandana", "Vijaya", "Jaya", "Manmatha", "Durmukhi",
	"Hevilambi", "Vilambi", "Vikari", "Sharvari", "Plava", "Shubhakrit", "Shobhakrit", "Krodhi", "Vishvavasu", "Parabhava",
	"Plavanga", "Keelaka", "Saumya", "Sadharana", "Virodhikrit", "Paridhavi", "Pramadeesha", "Ananda", "Rakshasa", "Nala",
	"Pingala", "Kalayukti", "Siddharthi", "Raudri", "Durmati", "Dundubhi", "Rudhirodgari", "Raktakshi", "Krodhana", "Akshaya",
}

// Samvatsara anchoring. Names are only reported inside the validated
// range; outside it the cycle position is not extrapolated.
const (
	samvatsaraAnchorYear = 1987
	samvatsaraMaxYear    = 2100
)

// SamvatsaraName returns the 60-cycle year name for a Tamil year starting
// in the given Gregorian year. The boolean is false outside the supported
// range.
func SamvatsaraName(startGregorianYear int) (string, bool) {
	if startGregorianYear < samvatsaraAnchorYear || startGregorianYear > samvatsaraMaxYear {
		return "", false
	}
	idx := (startGregorianYear - samvatsaraAnchorYear) % 60
	return samvatsara60[idx], true
}
