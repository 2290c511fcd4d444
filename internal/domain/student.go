package domain

import "encoding/json"

// Student is created on registration and never changes afterwards.
type Student struct {
	ID      string
	Name    string
	College string

	Extra Attributes
}

func (s Student) MarshalJSON() ([]byte, error) {
	o := newObject(s.Extra)
	o.nonEmpty("id", s.ID)
	o.nonEmpty("name", s.Name)
	o.nonEmpty("college", s.College)
	return json.Marshal(o)
}

func (s *Student) UnmarshalJSON(data []byte) error {
	fs, err := decodeObject(data)
	if err != nil {
		return err
	}
	*s = Student{
		ID:      deref(takeString(fs, "id")),
		Name:    deref(takeString(fs, "name")),
		College: deref(takeString(fs, "college")),
	}
	s.Extra = fs.attributes()
	return nil
}
