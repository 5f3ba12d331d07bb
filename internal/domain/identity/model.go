package identity

import (
	"github.com/koildeeee/HospitalManagerApp/internal/platform/codec"
)

// JSON keys of a persisted patient.
const (
	KeyName = "name"
	KeyID   = "id"
)

var patientShape = codec.MustShape("patient",
	codec.Field{Key: KeyName, Kind: codec.KindString},
	codec.Field{Key: KeyID, Kind: codec.KindInteger},
)

// Patient is a patient checked in at the front desk. ID is whatever number
// the operator enters; it is not checked for uniqueness.
type Patient struct {
	Name string
	ID   int
}

func (p *Patient) ToJSON() map[string]interface{} {
	return map[string]interface{}{
		KeyName: p.Name,
		KeyID:   p.ID,
	}
}

// PatientFromJSON builds a Patient from its JSON object. Every key is
// required; nothing is defaulted.
func PatientFromJSON(obj map[string]interface{}) (*Patient, error) {
	if err := patientShape.Validate(obj); err != nil {
		return nil, err
	}
	return &Patient{
		Name: codec.String(obj, KeyName),
		ID:   codec.Int(obj, KeyID),
	}, nil
}

// Doctor is a member of the hospital staff. Doctors come from the seed data
// and are never persisted.
type Doctor struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
}
