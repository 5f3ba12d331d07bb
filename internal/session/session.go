// Package session owns the front desk's in-memory state and moves the
// persisted collections to and from disk.
package session

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/koildeeee/HospitalManagerApp/internal/domain/clinical"
	"github.com/koildeeee/HospitalManagerApp/internal/domain/identity"
	"github.com/koildeeee/HospitalManagerApp/internal/domain/inbox"
	"github.com/koildeeee/HospitalManagerApp/internal/domain/scheduling"
	"github.com/koildeeee/HospitalManagerApp/internal/platform/store"
)

// Persisted collection names, in save/load order.
const (
	CollectionMedicalRecords = "medical records"
	CollectionPatients       = "patients"
	CollectionAppointments   = "appointments"
)

// StepResult reports the outcome of saving or loading one collection.
type StepResult struct {
	Collection string
	Path       string
	Count      int
	Err        error
}

func (r StepResult) OK() bool { return r.Err == nil }

// Session is the single owner of the five entity lists. The list fields are
// replaced wholesale by LoadState; callers must not cache them across a load.
type Session struct {
	ID uuid.UUID

	Patients       *identity.PatientList
	Doctors        *identity.DoctorList
	MedicalRecords *clinical.MedicalRecordList
	Appointments   *scheduling.AppointmentList
	Inquiries      *inbox.InquiryList

	fs     afero.Fs
	paths  store.Paths
	logger zerolog.Logger
}

// New builds a session with empty persisted lists and the built-in doctor and
// inquiry reference data.
func New(fs afero.Fs, paths store.Paths, logger zerolog.Logger) (*Session, error) {
	doctors, inquiries, err := loadSeed(seedYAML)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	return &Session{
		ID:             id,
		Patients:       identity.NewPatientList(),
		Doctors:        doctors,
		MedicalRecords: clinical.NewMedicalRecordList(),
		Appointments:   scheduling.NewAppointmentList(),
		Inquiries:      inquiries,
		fs:             fs,
		paths:          paths,
		logger:         logger.With().Str("session_id", id.String()).Logger(),
	}, nil
}

// Paths returns the files this session saves to and loads from.
func (s *Session) Paths() store.Paths { return s.paths }

// SaveState writes medical records, patients and appointments, in that
// order. A failed step does not stop the later ones and earlier files are
// not rolled back.
func (s *Session) SaveState() []StepResult {
	return []StepResult{
		s.save(CollectionMedicalRecords, s.paths.MedicalRecords, store.MedicalRecordsKey, s.MedicalRecords, s.MedicalRecords.Len()),
		s.save(CollectionPatients, s.paths.Patients, store.PatientsKey, s.Patients, s.Patients.Len()),
		s.save(CollectionAppointments, s.paths.Appointments, store.AppointmentsKey, s.Appointments, s.Appointments.Len()),
	}
}

func (s *Session) save(name, path, key string, c store.Collection, count int) StepResult {
	res := StepResult{Collection: name, Path: path, Count: count}
	res.Err = store.Save(s.fs, path, key, c)
	s.logStep("save", res)
	return res
}

// LoadState reads the three persisted collections in save order. Each list
// is replaced only when its file reads and decodes completely; otherwise the
// in-memory list is kept.
func (s *Session) LoadState() []StepResult {
	return []StepResult{
		s.load(CollectionMedicalRecords, s.paths.MedicalRecords, store.MedicalRecordsKey, func(objs []map[string]interface{}) (int, error) {
			l, err := clinical.MedicalRecordListFromJSON(objs)
			if err != nil {
				return 0, err
			}
			s.MedicalRecords = l
			return l.Len(), nil
		}),
		s.load(CollectionPatients, s.paths.Patients, store.PatientsKey, func(objs []map[string]interface{}) (int, error) {
			l, err := identity.PatientListFromJSON(objs)
			if err != nil {
				return 0, err
			}
			s.Patients = l
			return l.Len(), nil
		}),
		s.load(CollectionAppointments, s.paths.Appointments, store.AppointmentsKey, func(objs []map[string]interface{}) (int, error) {
			l, err := scheduling.AppointmentListFromJSON(objs)
			if err != nil {
				return 0, err
			}
			s.Appointments = l
			return l.Len(), nil
		}),
	}
}

func (s *Session) load(name, path, key string, apply func([]map[string]interface{}) (int, error)) StepResult {
	res := StepResult{Collection: name, Path: path}

	objs, err := store.NewReader(s.fs, path).ReadList(key)
	if err == nil {
		res.Count, err = apply(objs)
	}
	res.Err = err

	s.logStep("load", res)
	return res
}

func (s *Session) logStep(op string, res StepResult) {
	evt := s.logger.Info()
	if res.Err != nil {
		evt = s.logger.Error().Err(res.Err)
	}
	evt.
		Str("op", op).
		Str("collection", res.Collection).
		Str("path", res.Path).
		Int("count", res.Count).
		Msg("state step")
}
