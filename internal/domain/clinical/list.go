package clinical

import "fmt"

// MedicalRecordList holds medical records in filing order. Records are
// never removed individually; the list is only replaced wholesale on load.
type MedicalRecordList struct {
	records []*MedicalRecord
}

func NewMedicalRecordList() *MedicalRecordList {
	return &MedicalRecordList{records: []*MedicalRecord{}}
}

func (l *MedicalRecordList) Add(m *MedicalRecord) {
	l.records = append(l.records, m)
}

// All returns the live slice in filing order.
func (l *MedicalRecordList) All() []*MedicalRecord { return l.records }

func (l *MedicalRecordList) Len() int { return len(l.records) }

func (l *MedicalRecordList) ToJSON() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(l.records))
	for _, m := range l.records {
		out = append(out, m.ToJSON())
	}
	return out
}

// Validate rejects records whose numbers do not fit the persisted shape,
// such as a negative age.
func (l *MedicalRecordList) Validate() error {
	for i, obj := range l.ToJSON() {
		if err := medicalRecordShape.Validate(obj); err != nil {
			return fmt.Errorf("medical record %d: %w", i, err)
		}
	}
	return nil
}

// MedicalRecordListFromJSON decodes objects into a new list, failing on the
// first object that does not decode.
func MedicalRecordListFromJSON(objects []map[string]interface{}) (*MedicalRecordList, error) {
	l := &MedicalRecordList{records: make([]*MedicalRecord, 0, len(objects))}
	for i, obj := range objects {
		m, err := MedicalRecordFromJSON(obj)
		if err != nil {
			return nil, fmt.Errorf("medical record %d: %w", i, err)
		}
		l.Add(m)
	}
	return l, nil
}
