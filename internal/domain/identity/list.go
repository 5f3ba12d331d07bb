package identity

import (
	"fmt"
	"slices"
)

// PatientList holds checked-in patients in check-in order.
type PatientList struct {
	patients []*Patient
}

func NewPatientList() *PatientList {
	return &PatientList{patients: []*Patient{}}
}

// Add appends p. Duplicate names and IDs are accepted.
func (l *PatientList) Add(p *Patient) {
	l.patients = append(l.patients, p)
}

// All returns the live slice in check-in order.
func (l *PatientList) All() []*Patient { return l.patients }

func (l *PatientList) Len() int { return len(l.patients) }

// IndexByName returns the index of the first patient named exactly name, or
// -1.
func (l *PatientList) IndexByName(name string) int {
	return slices.IndexFunc(l.patients, func(p *Patient) bool { return p.Name == name })
}

// RemoveByName removes the first patient named exactly name and reports
// whether one was found. Names are assumed unique; with duplicates only the
// earliest check-in is removed.
func (l *PatientList) RemoveByName(name string) bool {
	i := l.IndexByName(name)
	if i < 0 {
		return false
	}
	l.patients = slices.Delete(l.patients, i, i+1)
	return true
}

func (l *PatientList) ToJSON() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(l.patients))
	for _, p := range l.patients {
		out = append(out, p.ToJSON())
	}
	return out
}

// Validate checks every patient against the persisted shape.
func (l *PatientList) Validate() error {
	for i, obj := range l.ToJSON() {
		if err := patientShape.Validate(obj); err != nil {
			return fmt.Errorf("patient %d: %w", i, err)
		}
	}
	return nil
}

// PatientListFromJSON decodes objects into a new list. It fails on the first
// object that does not decode.
func PatientListFromJSON(objects []map[string]interface{}) (*PatientList, error) {
	l := &PatientList{patients: make([]*Patient, 0, len(objects))}
	for i, obj := range objects {
		p, err := PatientFromJSON(obj)
		if err != nil {
			return nil, fmt.Errorf("patient %d: %w", i, err)
		}
		l.Add(p)
	}
	return l, nil
}

// DoctorList holds the hospital's doctors in seed order.
type DoctorList struct {
	doctors []*Doctor
}

func NewDoctorList() *DoctorList {
	return &DoctorList{doctors: []*Doctor{}}
}

func (l *DoctorList) Add(d *Doctor) {
	l.doctors = append(l.doctors, d)
}

func (l *DoctorList) All() []*Doctor { return l.doctors }

func (l *DoctorList) Len() int { return len(l.doctors) }
