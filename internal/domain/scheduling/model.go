package scheduling

import (
	"github.com/koildeeee/HospitalManagerApp/internal/platform/codec"
)

// JSON keys of a persisted appointment.
const (
	KeyName = "name"
	KeyTime = "time"
)

var appointmentShape = codec.MustShape("appointment",
	codec.Field{Key: KeyName, Kind: codec.KindString},
	codec.Field{Key: KeyTime, Kind: codec.KindString},
)

// Appointment books a patient, by name, for a time. Time is free text as
// typed by the operator, e.g. "300:pm".
type Appointment struct {
	Name string
	Time string
}

func (a *Appointment) ToJSON() map[string]interface{} {
	return map[string]interface{}{
		KeyName: a.Name,
		KeyTime: a.Time,
	}
}

func AppointmentFromJSON(obj map[string]interface{}) (*Appointment, error) {
	if err := appointmentShape.Validate(obj); err != nil {
		return nil, err
	}
	return &Appointment{
		Name: codec.String(obj, KeyName),
		Time: codec.String(obj, KeyTime),
	}, nil
}
