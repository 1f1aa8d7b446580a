package panchang

// Name tables carry Tamil + English display strings. Indexing is 1-based
// at the call sites; the arrays are zero-based.

var tithiNames = [30]string{
	"பிரதமை (Prathamai)", "துவிதியை (Dwitiya)", "திரிதியை (Tritiya)",
	"சதுர்த்தி (Chaturthi)", "பஞ்சமி (Panchami)", "சஷ்டி (Shashti)",
	"சப்தமி (Saptami)", "அஷ்டமி (Ashtami)", "நவமி (Navami)",
	"தசமி (Dasami)", "ஏகாதசி (Ekadashi)", "துவாதசி (Dwadashi)",
	"திரயோதசி (Trayodashi)", "சதுர்த்தசி (Chaturdashi)", "பௌர்ணமி (Pournami)",
	"பிரதமை க (Prathamai K)", "துவிதியை க (Dwitiya K)", "திரிதியை க (Tritiya K)",
	"சதுர்த்தி க (Chaturthi K)", "பஞ்சமி க (Panchami K)", "சஷ்டி க (Shashti K)",
	"சப்தமி க (Saptami K)", "அஷ்டமி க (Ashtami K)", "நவமி க (Navami K)",
	"தசமி க (Dasami K)", "ஏகாதசி க (Ekadashi K)", "துவாதசி க (Dwadashi K)",
	"திரயோதசி க (Trayodashi K)", "சதுர்த்தசி க (Chaturdashi K)", "அமாவாசை (Amavasya)",
}

const (
	pakshaSukla   = "சுக்ல பக்ஷம் (Sukla Paksha)"
	pakshaKrishna = "கிருஷ்ண பக்ஷம் (Krishna Paksha)"
	ekadashiNote  = "ஏகாதசி விரதம் (Ekadashi Fasting)"
)

type nakshatraInfo struct {
	Name  string
	Lord  string
	Deity string
}

var nakshatras = [27]nakshatraInfo{
	{"அஸ்வினி (Ashwini)", "கேது (Ketu)", "அஸ்வினி தேவர்கள்"},
	{"பரணி (Bharani)", "சுக்ரன் (Venus)", "யமன்"},
	{"கார்த்திகை (Krittika)", "சூரியன் (Sun)", "அக்னி"},
	{"ரோகிணி (Rohini)", "சந்திரன் (Moon)", "பிரம்மா"},
	{"மிருகசீரிஷம் (Mrigashira)", "செவ்வாய் (Mars)", "சோமன்"},
	{"திருவாதிரை (Ardra)", "ராகு (Rahu)", "ருத்ரன்"},
	{"புனர்பூசம் (Punarvasu)", "குரு (Jupiter)", "அதிதி"},
	{"பூசம் (Pushya)", "சனி (Saturn)", "பிருஹஸ்பதி"},
	{"ஆயில்யம் (Ashlesha)", "புதன் (Mercury)", "நாக தேவதைகள்"},
	{"மகம் (Magha)", "கேது (Ketu)", "பிதுர்கள்"},
	{"பூரம் (Purva Phalguni)", "சுக்ரன் (Venus)", "பக்யன்"},
	{"உத்திரம் (Uttara Phalguni)", "சூரியன் (Sun)", "அர்யமன்"},
	{"ஹஸ்தம் (Hasta)", "சந்திரன் (Moon)", "சவிதா"},
	{"சித்திரை (Chitra)", "செவ்வாய் (Mars)", "த்வஷ்டா"},
	{"ஸ்வாதி (Swati)", "ராகு (Rahu)", "வாயு"},
	{"விசாகம் (Vishakha)", "குரு (Jupiter)", "இந்திராக்னி"},
	{"அனுஷம் (Anuradha)", "சனி (Saturn)", "மித்ரன்"},
	{"கேட்டை (Jyeshtha)", "புதன் (Mercury)", "இந்திரன்"},
	{"மூலம் (Mula)", "கேது (Ketu)", "நிருதி"},
	{"பூராடம் (Purva Ashadha)", "சுக்ரன் (Venus)", "ஜலம்"},
	{"உத்திராடம் (Uttara Ashadha)", "சூரியன் (Sun)", "விச்வேதேவர்கள்"},
	{"திருவோணம் (Shravana)", "சந்திரன் (Moon)", "விஷ்ணு"},
	{"அவிட்டம் (Dhanishta)", "செவ்வாய் (Mars)", "வசுக்கள்"},
	{"சதயம் (Shatabhisha)", "ராகு (Rahu)", "வருணன்"},
	{"பூரட்டாதி (Purva Bhadrapada)", "குரு (Jupiter)", "அஜ ஏகபாத்"},
	{"உத்திரட்டாதி (Uttara Bhadrapada)", "சனி (Saturn)", "அஹிர்புத்னியன்"},
	{"ரேவதி (Revati)", "புதன் (Mercury)", "பூஷன்"},
}

const (
	natureAuspicious   = "சுபம் (Auspicious)"
	natureInauspicious = "அசுபம் (Inauspicious)"
	natureNeutral      = "நடுநிலை (Neutral)"
)

type yogaInfo struct {
	Name   string
	Nature string
}

var yogas = [27]yogaInfo{
	{"விஷ்கம்பம் (Vishkambha)", natureAuspicious},
	{"ப்ரீதி (Priti)", natureAuspicious},
	{"ஆயுஷ்மான் (Ayushman)", natureAuspicious},
	{"சௌபாக்யம் (Saubhagya)", natureAuspicious},
	{"சோபன (Shobhana)", natureAuspicious},
	{"அதிகண்டா (Atiganda)", natureInauspicious},
	{"சுகர்மா (Sukarma)", natureAuspicious},
	{"த்ருதி (Dhriti)", natureAuspicious},
	{"சூலா (Shula)", natureInauspicious},
	{"கண்டா (Ganda)", natureInauspicious},
	{"வ்ருத்தி (Vriddhi)", natureAuspicious},
	{"த்ருவ (Dhruva)", natureAuspicious},
	{"வ்யாகாத (Vyaghata)", natureInauspicious},
	{"ஹர்ஷன (Harshana)", natureAuspicious},
	{"வஜ்ரா (Vajra)", natureAuspicious},
	{"சித்தி (Siddhi)", natureAuspicious},
	{"வ்யதீபாத (Vyatipata)", natureInauspicious},
	{"வரியான் (Variyan)", natureInauspicious},
	{"பரிகா (Parigha)", natureInauspicious},
	{"சிவா (Shiva)", natureNeutral},
	{"சித்த (Siddha)", natureAuspicious},
	{"சாத்யா (Sadhya)", natureAuspicious},
	{"சுப (Shubha)", natureAuspicious},
	{"சுக்லா (Shukla)", natureAuspicious},
	{"பிரம்மா (Brahma)", natureAuspicious},
	{"ஐந்த்ரா (Aindra)", natureAuspicious},
	{"வைத்ருதி (Vaidhriti)", natureInauspicious},
}

// karanaNames are the eleven karana names the 60 half-tithis cycle
// through. Index 6 (Vishti/Bhadra) is the inauspicious one.
var karanaNames = [11]string{
	"பவ (Bava)", "பாலவ (Balava)", "கௌலவ (Kaulava)", "தைதில (Taitila)",
	"கர (Gara)", "வணிஜ (Vanija)", "விஷ்டி (Vishti)",
	"சகுனி (Shakuni)", "சதுஷ்பாத (Chatushpada)", "நாக (Naga)", "கிம்ஸ்துக்ன (Kimstughna)",
}

const vishtiCycleIndex = 6
