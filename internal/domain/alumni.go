package domain

import "encoding/json"

// Alumni is a directory profile. Profiles are append-only.
//
// Only ID and CreatedAt are owned by the server; every other field is
// whatever the caller supplied. Fields the API does not know about, or
// known fields carrying an unexpected JSON type, live in Extra.
type Alumni struct {
	ID        string
	Name      *string
	Company   *string
	Role      *string
	Timing    *string
	Skills    []string
	Fees      *string
	Certs     []string
	CreatedAt int64 // epoch milliseconds

	Extra Attributes
}

func (a Alumni) MarshalJSON() ([]byte, error) {
	o := newObject(a.Extra)
	o.nonEmpty("id", a.ID)
	o.str("name", a.Name)
	o.str("company", a.Company)
	o.str("role", a.Role)
	o.str("timing", a.Timing)
	o.strings("skills", a.Skills)
	o.str("fees", a.Fees)
	o.strings("certs", a.Certs)
	o.millis("createdAt", a.CreatedAt)
	return json.Marshal(o)
}

func (a *Alumni) UnmarshalJSON(data []byte) error {
	fs, err := decodeObject(data)
	if err != nil {
		return err
	}
	*a = Alumni{
		ID:      deref(takeString(fs, "id")),
		Name:    takeString(fs, "name"),
		Company: takeString(fs, "company"),
		Role:    takeString(fs, "role"),
		Timing:  takeString(fs, "timing"),
		Fees:    takeString(fs, "fees"),
	}
	a.Skills, _ = take[[]string](fs, "skills")
	a.Certs, _ = take[[]string](fs, "certs")
	a.CreatedAt, _ = take[int64](fs, "createdAt")
	a.Extra = fs.attributes()
	return nil
}

// Stamp assigns the server-owned identity, overriding anything the caller sent.
func (a *Alumni) Stamp(id string, createdAt int64) {
	a.ID = id
	a.CreatedAt = createdAt
	a.Extra.stamp("id", "createdAt")
}

// DisplayName returns the profile name or "" when absent.
func (a Alumni) DisplayName() string { return deref(a.Name) }

// CompanyName returns the company or "" when absent.
func (a Alumni) CompanyName() string { return deref(a.Company) }
