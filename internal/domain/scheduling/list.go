package scheduling

import (
	"fmt"
	"slices"
)

// AppointmentList holds booked appointments in booking order.
type AppointmentList struct {
	appointments []*Appointment
}

func NewAppointmentList() *AppointmentList {
	return &AppointmentList{appointments: []*Appointment{}}
}

func (l *AppointmentList) Add(a *Appointment) {
	l.appointments = append(l.appointments, a)
}

// All returns the live slice in booking order.
func (l *AppointmentList) All() []*Appointment { return l.appointments }

func (l *AppointmentList) Len() int { return len(l.appointments) }

// IndexByName returns the index of the first appointment for name, or -1.
func (l *AppointmentList) IndexByName(name string) int {
	return slices.IndexFunc(l.appointments, func(a *Appointment) bool { return a.Name == name })
}

// RemoveByName cancels the earliest-booked appointment for name and reports
// whether there was one.
func (l *AppointmentList) RemoveByName(name string) bool {
	i := l.IndexByName(name)
	if i < 0 {
		return false
	}
	l.appointments = slices.Delete(l.appointments, i, i+1)
	return true
}

func (l *AppointmentList) ToJSON() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(l.appointments))
	for _, a := range l.appointments {
		out = append(out, a.ToJSON())
	}
	return out
}

func (l *AppointmentList) Validate() error {
	for i, obj := range l.ToJSON() {
		if err := appointmentShape.Validate(obj); err != nil {
			return fmt.Errorf("appointment %d: %w", i, err)
		}
	}
	return nil
}

func AppointmentListFromJSON(objects []map[string]interface{}) (*AppointmentList, error) {
	l := &AppointmentList{appointments: make([]*Appointment, 0, len(objects))}
	for i, obj := range objects {
		a, err := AppointmentFromJSON(obj)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}
		l.Add(a)
	}
	return l, nil
}
