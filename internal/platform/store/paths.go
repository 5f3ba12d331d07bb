package store

// Default locations of the persisted collections. They are fixed at build
// time; there is no flag or environment override.
const (
	DataDir            = "./data"
	MedicalRecordsPath = "./data/medicalrecords.json"
	PatientsPath       = "./data/patients.json"
	AppointmentsPath   = "./data/appointments.json"
)

// Array keys inside each document. They must stay stable for files written
// by earlier runs to load.
const (
	MedicalRecordsKey = "medical records"
	PatientsKey       = "patients"
	AppointmentsKey   = "appointments"
)

// Paths names the file of each persisted collection.
type Paths struct {
	MedicalRecords string
	Patients       string
	Appointments   string
}

// DefaultPaths returns the paths under DataDir.
func DefaultPaths() Paths {
	return Paths{
		MedicalRecords: MedicalRecordsPath,
		Patients:       PatientsPath,
		Appointments:   AppointmentsPath,
	}
}
