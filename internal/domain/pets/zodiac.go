package pets

import "time"

type zodiacRange struct {
	sign       string
	startMonth time.Month
	startDay   int
}

// Inicio de cada signo; el signo vigente es el último cuyo inicio <= fecha.
var zodiacStarts = []zodiacRange{
	{"Capricorn", time.January, 1},
	{"Aquarius", time.January, 20},
	{"Pisces", time.February, 19},
	{"Aries", time.March, 21},
	{"Taurus", time.April, 20},
	{"Gemini", time.May, 21},
	{"Cancer", time.June, 21},
	{"Leo", time.July, 23},
	{"Virgo", time.August, 23},
	{"Libra", time.September, 23},
	{"Scorpio", time.October, 23},
	{"Sagittarius", time.November, 22},
	{"Capricorn", time.December, 22},
}

// ZodiacSign devuelve el signo zodiacal para el día/mes de t.
func ZodiacSign(t time.Time) string {
	m, d := t.Month(), t.Day()
	sign := zodiacStarts[0].sign
	for _, z := range zodiacStarts {
		if m > z.startMonth || (m == z.startMonth && d >= z.startDay) {
			sign = z.sign
		}
	}
	return sign
}

// AgeInYears devuelve años cumplidos entre birthday y now (0 si birthday es futuro).
func AgeInYears(birthday, now time.Time) int {
	years := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() || (now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
