// Package numerology computes Pythagorean numerology numbers from a name and
// a date of birth.
//
// Every function is pure and safe for concurrent use. Inputs are never
// rejected: an empty name or a date without digits yields 0, so callers must
// validate before invoking the engine.
package numerology

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Master numbers are never reduced further.
const (
	Master11 = 11
	Master22 = 22
	Master33 = 33
)

// Filter selects which letters of a name contribute to its value.
type Filter func(r rune) bool

// AllLetters keeps every Latin letter A-Z.
func AllLetters(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Vowels keeps A, E, I, O, U and Y. Y still carries its table value of 7.
func Vowels(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	default:
		return false
	}
}

// Numbers groups the three values derived for a person.
type Numbers struct {
	LifePath   int `json:"lifePath"   yaml:"lifePath"`
	Expression int `json:"expression" yaml:"expression"`
	SoulUrge   int `json:"soulUrge"   yaml:"soulUrge"`
}

// Valid reports whether all three numbers are in the reduced range.
func (n Numbers) Valid() bool {
	return IsValidNumber(n.LifePath) && IsValidNumber(n.Expression) && IsValidNumber(n.SoulUrge)
}

// Calculate derives life path, expression and soul urge numbers.
func Calculate(name, dob string) Numbers {
	return Numbers{
		LifePath:   LifePathNumber(dob),
		Expression: ExpressionNumber(name),
		SoulUrge:   SoulUrgeNumber(name),
	}
}

// LetterValue returns the Pythagorean value of an uppercase Latin letter,
// or 0 for anything else.
func LetterValue(r rune) int {
	if r < 'A' || r > 'Z' {
		return 0
	}

	return int(r-'A')%9 + 1
}

// Reduce sums decimal digits until a single digit remains. Reduction stops
// early at 11, 22 or 33, checked after every step.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}

	for n > 9 && !isMaster(n) {
		n = digitSum(n)
	}

	return n
}

// NameValue uppercases name, keeps the letters accepted by filter and sums
// their table values. Letters outside A-Z never contribute.
//
// Uppercasing uses full case mapping, so a letter may expand: ß becomes SS
// and the ﬁ ligature becomes FI.
func NameValue(name string, filter Filter) int {
	total := 0

	// A Caser carries state and is not safe to share.
	for _, r := range cases.Upper(language.Und).String(name) {
		if !AllLetters(r) || !filter(r) {
			continue
		}

		total += LetterValue(r)
	}

	return total
}

// LifePathNumber reduces the sum of every digit in dob. Separators and any
// other non-digit characters are ignored.
func LifePathNumber(dob string) int {
	total := 0

	for _, r := range dob {
		if r >= '0' && r <= '9' {
			total += int(r - '0')
		}
	}

	return Reduce(total)
}

// ExpressionNumber reduces the value of every letter in name.
func ExpressionNumber(name string) int {
	return Reduce(NameValue(name, AllLetters))
}

// SoulUrgeNumber reduces the value of the vowels in name.
func SoulUrgeNumber(name string) int {
	return Reduce(NameValue(name, Vowels))
}

// IsValidNumber reports whether n is 1-9 or a master number.
func IsValidNumber(n int) bool {
	return (n >= 1 && n <= 9) || isMaster(n)
}

// IsMaster reports whether n is 11, 22 or 33.
func IsMaster(n int) bool {
	return isMaster(n)
}

func isMaster(n int) bool {
	return n == Master11 || n == Master22 || n == Master33
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}

	return sum
}
