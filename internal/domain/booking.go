package domain

import "encoding/json"

// Booking is a mentoring slot reserved by a student with an alumnus.
// References to students and alumni are not checked and any number of
// bookings may share the same slot.
type Booking struct {
	ID             string
	AlumniID       *string
	AlumniName     *string
	StudentID      *string
	StudentName    *string
	StudentCollege *string
	Slot           *string // ISO-8601 timestamp
	Fee            *string
	CreatedAt      int64

	Extra Attributes
}

func (b Booking) MarshalJSON() ([]byte, error) {
	o := newObject(b.Extra)
	o.nonEmpty("id", b.ID)
	o.str("alumniId", b.AlumniID)
	o.str("alumniName", b.AlumniName)
	o.str("studentId", b.StudentID)
	o.str("studentName", b.StudentName)
	o.str("studentCollege", b.StudentCollege)
	o.str("slot", b.Slot)
	o.str("fee", b.Fee)
	o.millis("createdAt", b.CreatedAt)
	return json.Marshal(o)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	fs, err := decodeObject(data)
	if err != nil {
		return err
	}
	*b = Booking{
		ID:             deref(takeString(fs, "id")),
		AlumniID:       takeString(fs, "alumniId"),
		AlumniName:     takeString(fs, "alumniName"),
		StudentID:      takeString(fs, "studentId"),
		StudentName:    takeString(fs, "studentName"),
		StudentCollege: takeString(fs, "studentCollege"),
		Slot:           takeString(fs, "slot"),
		Fee:            takeString(fs, "fee"),
	}
	b.CreatedAt, _ = take[int64](fs, "createdAt")
	b.Extra = fs.attributes()
	return nil
}

// Stamp assigns the server-owned identity, overriding anything the caller sent.
func (b *Booking) Stamp(id string, createdAt int64) {
	b.ID = id
	b.CreatedAt = createdAt
	b.Extra.stamp("id", "createdAt")
}
