// Package menu is the operator's text interface to a session.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/koildeeee/HospitalManagerApp/internal/domain/clinical"
	"github.com/koildeeee/HospitalManagerApp/internal/domain/identity"
	"github.com/koildeeee/HospitalManagerApp/internal/domain/scheduling"
	"github.com/koildeeee/HospitalManagerApp/internal/session"
)

// errInputClosed ends the loop when input runs out mid-prompt.
var errInputClosed = errors.New("input closed")

const menuText = `
Select from:
	1 -> check in patient
	2 -> check out patient
	3 -> show all patients
	4 -> make new medical record
	5 -> show all medical records
	6 -> book an appointment
	7 -> remove an appointment
	8 -> show all appointments
	9 -> show all doctors
	10 -> show all inquiries
	11 -> save state to file
	12 -> load state from file
	q -> quit
`

// Menu reads one command per line and applies it to the session.
type Menu struct {
	s   *session.Session
	in  *bufio.Scanner
	out io.Writer
}

func New(s *session.Session, in io.Reader, out io.Writer) *Menu {
	return &Menu{s: s, in: bufio.NewScanner(in), out: out}
}

// Run loops until the operator enters q or input ends. Persistence failures
// are printed and never returned; only a read error on the input is.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)

		line, err := m.readLine()
		if errors.Is(err, errInputClosed) {
			break
		}
		if err != nil {
			return err
		}

		cmd := strings.ToLower(strings.TrimSpace(line))
		if cmd == "q" {
			break
		}
		if err := m.dispatch(cmd); err != nil {
			if errors.Is(err, errInputClosed) {
				break
			}
			return err
		}
	}

	fmt.Fprintln(m.out, "\nThank you for using MyHospitalManager!")
	return nil
}

func (m *Menu) dispatch(cmd string) error {
	switch cmd {
	case "1":
		return m.checkInPatient()
	case "2":
		return m.checkOutPatient()
	case "3":
		m.showPatients()
	case "4":
		return m.makeMedicalRecord()
	case "5":
		m.showMedicalRecords()
	case "6":
		return m.bookAppointment()
	case "7":
		return m.removeAppointment()
	case "8":
		m.showAppointments()
	case "9":
		m.showDoctors()
	case "10":
		m.showInquiries()
	case "11":
		Report(m.out, "save", m.s.SaveState())
	case "12":
		Report(m.out, "load", m.s.LoadState())
	default:
		fmt.Fprintln(m.out, "Selection not valid...")
	}
	return nil
}

func (m *Menu) checkInPatient() error {
	name, err := m.prompt("Please enter the name of the patient you wish to check in.")
	if err != nil {
		return err
	}
	id, err := m.promptInt("Please enter the ID number of the patient you wish to check in.", false)
	if err != nil {
		return err
	}

	m.s.Patients.Add(&identity.Patient{Name: name, ID: id})
	fmt.Fprintln(m.out, "Successful!")
	return nil
}

func (m *Menu) checkOutPatient() error {
	name, err := m.prompt("Please enter the name of the patient you wish to check out.")
	if err != nil {
		return err
	}

	if m.s.Patients.RemoveByName(name) {
		fmt.Fprintln(m.out, "Successful!")
	} else {
		fmt.Fprintf(m.out, "No patient named %q is checked in.\n", name)
	}
	return nil
}

func (m *Menu) showPatients() {
	for _, p := range m.s.Patients.All() {
		fmt.Fprintf(m.out, "%s , %d\n\n", p.Name, p.ID)
	}
}

func (m *Menu) makeMedicalRecord() error {
	rec := &clinical.MedicalRecord{}
	var err error

	if rec.Name, err = m.prompt("Please enter the patient's name."); err != nil {
		return err
	}
	if rec.Age, err = m.promptInt("Please enter the patient's age.", true); err != nil {
		return err
	}
	if rec.Height, err = m.promptInt("Please enter the patient's height.", false); err != nil {
		return err
	}
	if rec.Weight, err = m.promptInt("Please enter the patient's weight.", false); err != nil {
		return err
	}
	if rec.BloodType, err = m.prompt("Please enter the patient's blood type."); err != nil {
		return err
	}

	m.s.MedicalRecords.Add(rec)
	fmt.Fprintln(m.out, "Successful!")
	return nil
}

func (m *Menu) showMedicalRecords() {
	for _, r := range m.s.MedicalRecords.All() {
		fmt.Fprintf(m.out, "Name: %s\nAge: %d\nHeight: %d\nWeight: %d\nBlood Type: %s\n\n",
			r.Name, r.Age, r.Height, r.Weight, r.BloodType)
	}
}

func (m *Menu) bookAppointment() error {
	name, err := m.prompt("Please enter the name of the patient you wish to book.")
	if err != nil {
		return err
	}
	at, err := m.prompt("Please enter the time you wish to have your appointment. [000: am/pm]")
	if err != nil {
		return err
	}

	m.s.Appointments.Add(&scheduling.Appointment{Name: name, Time: at})
	fmt.Fprintln(m.out, "Successful!")
	return nil
}

func (m *Menu) removeAppointment() error {
	name, err := m.prompt("Please enter the name of the appointment you wish to remove.")
	if err != nil {
		return err
	}

	if m.s.Appointments.RemoveByName(name) {
		fmt.Fprintln(m.out, "Successful!")
	} else {
		fmt.Fprintf(m.out, "No appointment is booked for %q.\n", name)
	}
	return nil
}

func (m *Menu) showAppointments() {
	for _, a := range m.s.Appointments.All() {
		fmt.Fprintf(m.out, "%s\n%s\n", a.Name, a.Time)
	}
}

func (m *Menu) showDoctors() {
	for _, d := range m.s.Doctors.All() {
		fmt.Fprintf(m.out, "Dr. %s, %s\n", d.Name, d.Department)
	}
}

func (m *Menu) showInquiries() {
	for i, q := range m.s.Inquiries.All() {
		fmt.Fprintf(m.out, "%d\nSubject: %s\nDate: %s\nAdditional Remarks: \n%s\n\n",
			i+1, q.Subject, q.Date, q.Remarks)
	}
}

// Report prints one line per collection step of a save or load.
func Report(w io.Writer, action string, results []session.StepResult) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "Failed to %s %s (%s): %v\n", action, r.Collection, r.Path, r.Err)
			continue
		}
		switch action {
		case "save":
			fmt.Fprintf(w, "Saved %s to %s\n", savedLabel(r.Collection), r.Path)
		default:
			fmt.Fprintf(w, "Loaded %s from %s\n", loadedLabel(r.Collection), r.Path)
		}
	}
}

func savedLabel(collection string) string {
	switch collection {
	case session.CollectionPatients:
		return "list of patients"
	case session.CollectionAppointments:
		return "list of appointments"
	}
	return collection
}

func loadedLabel(collection string) string {
	switch collection {
	case session.CollectionPatients:
		return "patient list"
	case session.CollectionAppointments:
		return "appointment list"
	}
	return collection
}

func (m *Menu) readLine() (string, error) {
	if m.in.Scan() {
		return m.in.Text(), nil
	}
	if err := m.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", errInputClosed
}

func (m *Menu) prompt(question string) (string, error) {
	fmt.Fprintln(m.out, question)
	return m.readLine()
}

// promptInt asks until the answer parses as a 32-bit integer, rejecting
// negatives when nonNegative is set.
func (m *Menu) promptInt(question string, nonNegative bool) (int, error) {
	for {
		line, err := m.prompt(question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a whole number.")
			continue
		}
		if nonNegative && n < 0 {
			fmt.Fprintln(m.out, "Please enter a number that is not negative.")
			continue
		}
		return int(n), nil
	}
}
