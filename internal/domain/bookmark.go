package domain

import "encoding/json"

// Bookmark marks an alumni profile as saved.
//
// Bookmarks carry no identity of their own: they are stored exactly as
// received and removed by AlumniID, which deletes every match.
type Bookmark struct {
	AlumniID *string

	Extra Attributes
}

func (b Bookmark) MarshalJSON() ([]byte, error) {
	o := newObject(b.Extra)
	o.str("alumniId", b.AlumniID)
	return json.Marshal(o)
}

func (b *Bookmark) UnmarshalJSON(data []byte) error {
	fs, err := decodeObject(data)
	if err != nil {
		return err
	}
	*b = Bookmark{AlumniID: takeString(fs, "alumniId")}
	b.Extra = fs.attributes()
	return nil
}

// References reports whether the bookmark points at the given alumni id.
// A missing or non-string alumniId never matches.
func (b Bookmark) References(alumniID string) bool {
	return b.AlumniID != nil && *b.AlumniID == alumniID
}
