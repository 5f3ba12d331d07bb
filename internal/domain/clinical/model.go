package clinical

import (
	"github.com/koildeeee/HospitalManagerApp/internal/platform/codec"
)

// JSON keys of a persisted medical record. KeyBloodType contains a space
// and must not change: existing files use it.
const (
	KeyName      = "name"
	KeyAge       = "age"
	KeyHeight    = "height"
	KeyWeight    = "weight"
	KeyBloodType = "blood type"
)

var medicalRecordShape = codec.MustShape("medical record",
	codec.Field{Key: KeyName, Kind: codec.KindString},
	codec.Field{Key: KeyAge, Kind: codec.KindInteger, NonNegative: true},
	codec.Field{Key: KeyHeight, Kind: codec.KindInteger},
	codec.Field{Key: KeyWeight, Kind: codec.KindInteger},
	codec.Field{Key: KeyBloodType, Kind: codec.KindString},
)

// MedicalRecord is the intake record filed for a patient.
type MedicalRecord struct {
	Name      string
	Age       int
	Height    int // cm
	Weight    int // kg
	BloodType string
}

func (m *MedicalRecord) ToJSON() map[string]interface{} {
	return map[string]interface{}{
		KeyName:      m.Name,
		KeyAge:       m.Age,
		KeyHeight:    m.Height,
		KeyWeight:    m.Weight,
		KeyBloodType: m.BloodType,
	}
}

// MedicalRecordFromJSON builds a MedicalRecord from its JSON object. A
// missing or mistyped key is a codec.ErrDecode; a negative age is too.
func MedicalRecordFromJSON(obj map[string]interface{}) (*MedicalRecord, error) {
	if err := medicalRecordShape.Validate(obj); err != nil {
		return nil, err
	}
	return &MedicalRecord{
		Name:      codec.String(obj, KeyName),
		Age:       codec.Int(obj, KeyAge),
		Height:    codec.Int(obj, KeyHeight),
		Weight:    codec.Int(obj, KeyWeight),
		BloodType: codec.String(obj, KeyBloodType),
	}, nil
}
