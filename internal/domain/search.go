package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SearchBlob is the lower-cased text an alumni profile is matched against:
// name, company and skills joined by single spaces.
//
// Fields that did not decode into their typed form still contribute their
// scalar values from Extra, so a skills array mixing strings and numbers
// is searchable by every element.
func SearchBlob(a Alumni) string {
	return strings.ToLower(nameText(a) + " " + companyText(a) + " " + skillsText(a))
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// profile's search blob. The empty query matches every profile.
func MatchesQuery(a Alumni, query string) bool {
	return strings.Contains(SearchBlob(a), strings.ToLower(query))
}

// FilterAlumni returns the profiles matching query, in their original order.
func FilterAlumni(list []Alumni, query string) []Alumni {
	out := make([]Alumni, 0, len(list))
	for _, a := range list {
		if MatchesQuery(a, query) {
			out = append(out, a)
		}
	}
	return out
}

func nameText(a Alumni) string {
	if a.Name != nil {
		return *a.Name
	}
	return rawText(a.Extra["name"])
}

// companyText treats a zero or false company like a missing one.
func companyText(a Alumni) string {
	if a.Company != nil {
		return *a.Company
	}
	switch s := rawText(a.Extra["company"]); s {
	case "0", "false":
		return ""
	default:
		return s
	}
}

// skillsText joins the skills array. A value that is not an array counts as empty.
func skillsText(a Alumni) string {
	if a.Skills != nil {
		return strings.Join(a.Skills, " ")
	}
	var items []any
	if err := json.Unmarshal(a.Extra["skills"], &items); err != nil {
		return ""
	}
	return joinText(items, " ")
}

func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return valueText(v)
}

// valueText renders a decoded JSON value as search text. null and objects
// render empty; nested arrays are joined with commas.
func valueText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return numberText(t)
	case []any:
		return joinText(t, ",")
	default:
		return ""
	}
}

func joinText(items []any, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = valueText(it)
	}
	return strings.Join(parts, sep)
}

// numberText prints integral values without a fraction or exponent below 1e21.
func numberText(f float64) string {
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
