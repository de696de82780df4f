package repository

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// nativeIDPattern matches the 24 hex characters of a MongoDB ObjectID.
var nativeIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// LookupKind tells which field a Lookup filters on.
type LookupKind int

const (
	ByNativeID LookupKind = iota // filter on _id
	ByMovieID                    // filter on Movie_ID with a parsed integer
	ByRawValue                   // filter on Movie_ID with the unparsed string; never matches
)

// Lookup describes how a path identifier selects one movie.
type Lookup struct {
	Kind     LookupKind
	NativeID primitive.ObjectID
	MovieID  int
	Raw      string
}

// ResolveIdentifier classifies a path parameter.  Identifiers shaped like an
// ObjectID resolve by native id, even when they are all digits.  Anything
// else resolves by Movie_ID using the leading integer of the string; when no
// integer can be read the lookup keeps the raw string so it matches nothing.
func ResolveIdentifier(raw string) Lookup {
	if nativeIDPattern.MatchString(raw) {
		if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
			return Lookup{Kind: ByNativeID, NativeID: oid, Raw: raw}
		}
	}
	if n, ok := leadingInt(raw); ok {
		return Lookup{Kind: ByMovieID, MovieID: n, Raw: raw}
	}
	return Lookup{Kind: ByRawValue, Raw: raw}
}

// Filter returns the MongoDB filter document for l.
func (l Lookup) Filter() bson.M {
	switch l.Kind {
	case ByNativeID:
		return bson.M{"_id": l.NativeID}
	case ByMovieID:
		return bson.M{"Movie_ID": l.MovieID}
	default:
		return bson.M{"Movie_ID": l.Raw}
	}
}

// leadingInt reads an optionally signed run of digits after leading
// whitespace and ignores whatever follows, so "12abc" reads as 12.  A 0x or
// 0X prefix switches to hexadecimal digits, so "0x1A" reads as 26.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit, s = 16, isHex, s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(sign+s[:end], base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func isDecimal(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDecimal(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
