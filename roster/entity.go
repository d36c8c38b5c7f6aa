package roster

import (
	"slices"

	"github.com/karupanerura/collection-cache/format"
)

// Status is the enrollment status of a student.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusWaitlist Status = "waitlist"
)

// Document is a file attached to a student record.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Student is a student record as served by the students endpoint.
type Student struct {
	ID        string     `json:"_id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	ProgramID string     `json:"program,omitempty"`
	Status    Status     `json:"status,omitempty"`
	Documents []Document `json:"documents,omitempty"`
}

// Clone returns a deep copy of the student.
func (s Student) Clone() Student {
	s.Documents = slices.Clone(s.Documents)
	return s
}

// FullName returns "First Last".
func (s Student) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}

// DisplayPhone returns the phone number as "(AAA) BBB-CCCC", or the raw value if it is not a 10-digit number.
func (s Student) DisplayPhone() string {
	if p, ok := format.FormatPhoneNumber(s.Phone); ok {
		return p
	}
	return s.Phone
}

// DocumentNames returns the display names of the documents, shortened so that they fit in one row.
func (s Student) DocumentNames() []string {
	names := make([]string, len(s.Documents))
	for i, d := range s.Documents {
		names[i] = format.TruncateDocumentName(d.Name, len(s.Documents)).String()
	}
	return names
}

// StudentID returns the identifier of a student.
func StudentID(s Student) string {
	return s.ID
}

// Program is a program record as served by the programs endpoint.
type Program struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	Color        string   `json:"color,omitempty"`
	Days         []string `json:"days,omitempty"`
}

// Clone returns a deep copy of the program.
func (p Program) Clone() Program {
	p.Days = slices.Clone(p.Days)
	return p
}

// ProgramID returns the identifier of a program.
func ProgramID(p Program) string {
	return p.ID
}
